// Package announce formats the next-throw announcements returned to callers.
//
// The French strings are part of the public contract and are asserted verbatim by
// consumers, so they must not change without a new Announcer.
package announce

import (
	"fmt"
	"strings"
)

// Locale identifies a set of announcement strings
type Locale string

const (
	// LocaleFrench is the default locale
	LocaleFrench Locale = "fr"

	// LocaleEnglish is an alternative for embedding applications
	LocaleEnglish Locale = "en"
)

// AnnounceError is a custom error type for announcer lookups
type AnnounceError string

// Error implements the error interface
func (e AnnounceError) Error() string {
	return string(e)
}

const (
	ErrUnknownLocale AnnounceError = "unknown locale"
)

// Announcer renders what the game tells the caller after each call
type Announcer interface {
	// NextThrow describes the ball due next
	NextThrow(player string, turn, ball int) string

	// GameOver is returned once every player has finished
	GameOver() string
}

// French renders the contract strings consumers assert on
type French struct{}

// NewFrench creates the default announcer
func NewFrench() *French {
	return &French{}
}

// NextThrow returns "Prochain tir : joueur {name}, tour n° {turn}, boule n° {ball}"
func (f *French) NextThrow(player string, turn, ball int) string {
	return fmt.Sprintf("Prochain tir : joueur %s, tour n° %d, boule n° %d", player, turn, ball)
}

// GameOver returns "Partie terminée"
func (f *French) GameOver() string {
	return "Partie terminée"
}

// English is a translation of French
type English struct{}

// NewEnglish creates an English announcer
func NewEnglish() *English {
	return &English{}
}

// NextThrow describes the ball due next
func (e *English) NextThrow(player string, turn, ball int) string {
	return fmt.Sprintf("Next throw: player %s, frame %d, ball %d", player, turn, ball)
}

// GameOver is returned once every player has finished
func (e *English) GameOver() string {
	return "Game over"
}

// ForLocale returns the announcer for a locale name; an empty name means French
func ForLocale(locale string) (Announcer, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(locale))) {
	case "", LocaleFrench:
		return NewFrench(), nil
	case LocaleEnglish:
		return NewEnglish(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
}

package camel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name does not match any rule set
var ErrUnknownMode = errors.New("unknown mode")

// Rules determines how hands are classified and tie-broken
type Rules struct {
	Name     string
	Strength StrengthTable

	// Joker is the wild label, or 0 if there are no wilds
	Joker Card
}

// Standard is the baseline rule set, no wilds
var Standard = Rules{
	Name:     "standard",
	Strength: standardStrength,
}

// JokerWild treats J as a wild that boosts the hand type but is the lowest card on a tie-break
var JokerWild = Rules{
	Name:     "joker",
	Strength: jokerStrength,
	Joker:    Jack,
}

// HasJoker returns true if the rules have a wild label
func (r Rules) HasJoker() bool {
	return r.Joker != 0
}

// IsJoker returns true if the card is the wild label
func (r Rules) IsJoker(c Card) bool {
	return r.HasJoker() && c == r.Joker
}

// RulesFromMode returns the rule set for the mode name
func RulesFromMode(mode string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", Standard.Name:
		return Standard, nil
	case JokerWild.Name, "wild":
		return JokerWild, nil
	default:
		return Rules{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

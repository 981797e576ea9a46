package camel

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a card label is not one of 23456789TJQKA
var ErrInvalidCard = errors.New("invalid card")

// Card is a single card label, i.e., 'T' or '7'
type Card byte

// face cards
const (
	Ten   Card = 'T'
	Jack  Card = 'J'
	Queen Card = 'Q'
	King  Card = 'K'
	Ace   Card = 'A'
)

// HandSize is the number of cards in every hand
const HandSize = 5

func (c Card) String() string {
	return string(c)
}

// IsValid returns true if the card is one of the thirteen known labels
func (c Card) IsValid() bool {
	_, ok := standardStrength[c]
	return ok
}

// CardFromByte returns a Card from its label
func CardFromByte(b byte) (Card, error) {
	c := Card(b)
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, b)
	}

	return c, nil
}

// CardsFromString parses exactly HandSize card labels, i.e., "32T3K"
func CardsFromString(s string) ([HandSize]Card, error) {
	var cards [HandSize]Card
	if len(s) != HandSize {
		return cards, fmt.Errorf("%w: expected %d cards, got %q", ErrInvalidCard, HandSize, s)
	}

	for i := 0; i < HandSize; i++ {
		c, err := CardFromByte(s[i])
		if err != nil {
			return cards, err
		}

		cards[i] = c
	}

	return cards, nil
}

// CardsToString converts the cards back into their label form
func CardsToString(cards [HandSize]Card) string {
	b := make([]byte, HandSize)
	for i, c := range cards {
		b[i] = byte(c)
	}

	return string(b)
}

// StrengthTable maps a card label to its tie-break strength
type StrengthTable map[Card]int

// Strength returns the strength of the card
// The boolean is false if the card is not in the table
func (s StrengthTable) Strength(c Card) (int, bool) {
	v, ok := s[c]
	return v, ok
}

var standardStrength = StrengthTable{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

// jokers are the weakest card
var jokerStrength = StrengthTable{
	Jack: 1,
	'2':  2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	Ten:   10,
	Queen: 11,
	King:  12,
	Ace:   13,
}

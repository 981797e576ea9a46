package camel

import "fmt"

// Hand is five cards and the bid placed on them
type Hand struct {
	cards    [HandSize]Card
	handType HandType
	bid      uint64
}

// NewHand classifies the cards under the rules and returns the hand
func NewHand(cards [HandSize]Card, bid uint64, rules Rules) Hand {
	return Hand{
		cards:    cards,
		handType: Classify(cards, rules),
		bid:      bid,
	}
}

// Cards returns the cards in their dealt order
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// Type returns the hand type
func (h Hand) Type() HandType {
	return h.handType
}

// Bid returns the bid
func (h Hand) Bid() uint64 {
	return h.bid
}

func (h Hand) String() string {
	return fmt.Sprintf("%s %d", CardsToString(h.cards), h.bid)
}

// Compare returns -1 if a is weaker than b, 1 if a is stronger, and 0 if they are equal
// The hand type decides first, then the cards are compared left to right using the rules' strength table
func Compare(a, b Hand, rules Rules) int {
	if a.handType != b.handType {
		if a.handType < b.handType {
			return -1
		}

		return 1
	}

	for i := 0; i < HandSize; i++ {
		left, _ := rules.Strength.Strength(a.cards[i])
		right, _ := rules.Strength.Strength(b.cards[i])
		if left < right {
			return -1
		} else if left > right {
			return 1
		}
	}

	return 0
}

// Less returns true if a ranks below b
func Less(a, b Hand, rules Rules) bool {
	return Compare(a, b, rules) < 0
}

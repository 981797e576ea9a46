package camel

import "fmt"

// HandType is the category of a hand, i.e., full house
type HandType int

// Constants for hand type, weakest first
const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// HandTypes lists every hand type from weakest to strongest
var HandTypes = []HandType{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	FullHouse,
	FourOfAKind,
	FiveOfAKind,
}

// Rank returns the ordinal of the hand type, 0 (high card) through 6 (five of a kind)
func (h HandType) Rank() int {
	return int(h)
}

// String returns the string representation of a hand type
func (h HandType) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown hand type: %d", h))
	}
}

package camel

import "sort"

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	cards  [HandSize]Card
	rules  Rules
	groups []int
	jokers int

	handType HandType
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(cards [HandSize]Card, rules Rules) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: cards,
		rules: rules,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Classify returns the hand type of the cards under the rules
func Classify(cards [HandSize]Card, rules Rules) HandType {
	return NewHandAnalyzer(cards, rules).GetHandType()
}

// analyzeHand groups the cards by label and sorts the group sizes from largest to smallest
// Jokers are pulled out and added to the largest group
func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[Card]int, HandSize)
	for _, card := range h.cards {
		if h.rules.IsJoker(card) {
			h.jokers++
			continue
		}

		counts[card]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(groups)))

	if h.jokers > 0 {
		if len(groups) == 0 {
			// all jokers
			groups = append(groups, 0)
		}

		groups[0] += h.jokers
	}

	h.groups = groups
}

// calculateHand will determine the hand type
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	switch h.groups[0] {
	case 5:
		h.handType = FiveOfAKind
	case 4:
		h.handType = FourOfAKind
	case 3:
		if h.groups[1] == 2 {
			h.handType = FullHouse
		} else {
			h.handType = ThreeOfAKind
		}
	case 2:
		if h.groups[1] == 2 {
			h.handType = TwoPair
		} else {
			h.handType = OnePair
		}
	default:
		h.handType = HighCard
	}
}

// GetHandType returns the best hand type the cards can make
func (h *HandAnalyzer) GetHandType() HandType {
	return h.handType
}

// Groups returns the group sizes, largest first, after jokers have been applied
func (h *HandAnalyzer) Groups() []int {
	groups := make([]int, len(h.groups))
	copy(groups, h.groups)
	return groups
}

// Jokers returns the number of wild cards in the hand
func (h *HandAnalyzer) Jokers() int {
	return h.jokers
}

package camel

import "sort"

// RankedHand is a hand with its final 1-based rank
type RankedHand struct {
	Hand
	Rank uint64
}

// Winnings returns rank * bid
func (r RankedHand) Winnings() uint64 {
	return r.Rank * r.bid
}

// Buckets partitions the hands by hand type, weakest type first
// Each bucket is sorted weakest to strongest.
func Buckets(hands []Hand, rules Rules) [][]Hand {
	buckets := make([][]Hand, len(HandTypes))
	for _, hand := range hands {
		i := hand.handType.Rank()
		buckets[i] = append(buckets[i], hand)
	}

	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return Less(bucket[i], bucket[j], rules)
		})
	}

	return buckets
}

// Rank returns every hand with its rank, weakest (rank 1) first
func Rank(hands []Hand, rules Rules) []RankedHand {
	ranked := make([]RankedHand, 0, len(hands))
	rank := uint64(1)
	for _, bucket := range Buckets(hands, rules) {
		for _, hand := range bucket {
			ranked = append(ranked, RankedHand{Hand: hand, Rank: rank})
			rank++
		}
	}

	return ranked
}

// TotalWinnings returns the sum of rank * bid across all hands
func TotalWinnings(hands []Hand, rules Rules) uint64 {
	var total uint64
	for _, r := range Rank(hands, rules) {
		total += r.Winnings()
	}

	return total
}

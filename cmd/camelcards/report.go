package main

import (
	"camelcards/pkg/camel"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

// writeReport renders the ranked hands as a table, weakest first
func writeReport(w io.Writer, ranked []camel.RankedHand, rules camel.Rules) error {
	data := pterm.TableData{
		{"Rank", "Cards", "Type", "Jokers", "Bid", "Winnings"},
	}

	for _, r := range ranked {
		jokers := "-"
		if rules.HasJoker() {
			jokers = strconv.Itoa(camel.NewHandAnalyzer(r.Cards(), rules).Jokers())
		}

		data = append(data, []string{
			strconv.FormatUint(r.Rank, 10),
			camel.CardsToString(r.Cards()),
			r.Type().String(),
			jokers,
			strconv.FormatUint(r.Bid(), 10),
			strconv.FormatUint(r.Winnings(), 10),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, table+"\n")
	return err
}

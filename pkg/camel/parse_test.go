package camel

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	a := assert.New(t)

	h, err := ParseHand("T55J5 684", Standard)
	a.NoError(err)
	a.Equal(ThreeOfAKind, h.Type())
	a.Equal(uint64(684), h.Bid())

	h, err = ParseHand("T55J5 684", JokerWild)
	a.NoError(err)
	a.Equal(FourOfAKind, h.Type())

	h, err = ParseHand("AAAAA 0", Standard)
	a.NoError(err)
	a.Equal(uint64(0), h.Bid())
}

func TestParseHand_errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"32T3K", ErrMalformedLine},
		{"32T3 765", ErrMalformedLine},
		{"32T3KA 765", ErrMalformedLine},
		{"32T3K  765", ErrMalformedLine},
		{"32T3K 765 1", ErrMalformedLine},
		{"32T3K -765", ErrMalformedLine},
		{"32T3K 7a", ErrMalformedLine},
		{" 32T3K 765", ErrMalformedLine},
		{"32X3K 765", ErrInvalidCard},
		{"32T3K 99999999999999999999999", ErrInvalidBid},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseHand(tt.line, Standard)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseHands(t *testing.T) {
	a := assert.New(t)

	hands, err := ParseHands(strings.NewReader("32T3K 765\r\n\nKK677 28\n"), Standard)
	a.NoError(err)
	a.Len(hands, 2)
	a.Equal("KK677 28", hands[1].String())

	hands, err = ParseHands(strings.NewReader(""), Standard)
	a.NoError(err)
	a.Len(hands, 0)
}

func TestParseHands_lineError(t *testing.T) {
	a := assert.New(t)

	hands, err := ParseHands(strings.NewReader("32T3K 765\nKK6Z7 28\nKTJJT 220\n"), Standard)
	a.Nil(hands)
	a.ErrorIs(err, ErrInvalidCard)

	var lineErr *LineError
	if a.True(errors.As(err, &lineErr)) {
		a.Equal(2, lineErr.Line)
		a.Equal("KK6Z7 28", lineErr.Text)
	}

	a.Contains(err.Error(), "line 2")
	a.Contains(err.Error(), "KK6Z7 28")
}

func TestParseFile(t *testing.T) {
	hands, err := ParseFile("testdata/example.txt", Standard)
	require.NoError(t, err)
	assert.Len(t, hands, 5)

	_, err = ParseFile("testdata/does-not-exist.txt", Standard)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRulesFromMode(t *testing.T) {
	a := assert.New(t)

	r, err := RulesFromMode("")
	a.NoError(err)
	a.Equal(Standard.Name, r.Name)
	a.False(r.HasJoker())

	r, err = RulesFromMode(" Joker ")
	a.NoError(err)
	a.Equal(JokerWild.Name, r.Name)
	a.True(r.IsJoker(Jack))
	a.False(r.IsJoker(Queen))

	_, err = RulesFromMode("bogus")
	a.ErrorIs(err, ErrUnknownMode)
}

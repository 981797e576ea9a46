package camel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a line is not in the format of <5 cards><space><bid>
var ErrMalformedLine = errors.New("malformed line")

// ErrInvalidBid is returned when the bid is not a non-negative integer
var ErrInvalidBid = errors.New("invalid bid")

var lineRx = regexp.MustCompile(`^(\S{5}) ([0-9]+)\z`)

// LineError identifies the input line a parse error came from
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error
func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseHand parses a single line, i.e., "32T3K 765"
func ParseHand(line string, rules Rules) (Hand, error) {
	match := lineRx.FindStringSubmatch(line)
	if match == nil {
		return Hand{}, ErrMalformedLine
	}

	cards, err := CardsFromString(match[1])
	if err != nil {
		return Hand{}, err
	}

	bid, err := strconv.ParseUint(match[2], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %v", ErrInvalidBid, err)
	}

	return NewHand(cards, bid, rules), nil
}

// ParseHands reads one hand per line
// Blank lines are skipped. Any bad line aborts the parse.
func ParseHands(r io.Reader, rules Rules) ([]Hand, error) {
	hands := make([]Hand, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		hand, err := ParseHand(line, rules)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: err}
		}

		hands = append(hands, hand)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return hands, nil
}

// ParseFile opens the file and parses every hand in it
func ParseFile(path string, rules Rules) ([]Hand, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseHands(file, rules)
}

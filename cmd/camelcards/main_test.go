package main

import (
	"bytes"
	"camelcards/internal/config"
	"camelcards/pkg/camel"
	"testing"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func testConfig(input, mode string) config.Config {
	cfg := config.DefaultConfig()
	cfg.InputPath = input
	cfg.Mode = mode
	return cfg
}

func Test_run(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"standard", "6440\n"},
		{"joker", "5905\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			var stdout, stderr bytes.Buffer

			err := run(testConfig("testdata/example.txt", tt.mode), false, &stdout, &stderr, logger)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, stdout.String())
			assert.Equal(t, "", stderr.String())

			entry := hook.LastEntry()
			if assert.NotNil(t, entry) {
				assert.Equal(t, "scored hands", entry.Message)
				assert.Equal(t, 5, entry.Data["hands"])
			}
		})
	}
}

func Test_run_inputDir(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var stdout, stderr bytes.Buffer

	cfg := testConfig("example.txt", "standard")
	cfg.InputDir = "testdata"
	assert.NoError(t, run(cfg, false, &stdout, &stderr, logger))
	assert.Equal(t, "6440\n", stdout.String())
}

func Test_run_errors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var stdout, stderr bytes.Buffer

	err := run(testConfig("testdata/example.txt", "bogus"), false, &stdout, &stderr, logger)
	assert.ErrorIs(t, err, camel.ErrUnknownMode)

	err = run(testConfig("testdata/missing.txt", "standard"), false, &stdout, &stderr, logger)
	assert.Error(t, err)

	err = run(testConfig("testdata/bad.txt", "standard"), false, &stdout, &stderr, logger)
	assert.ErrorIs(t, err, camel.ErrInvalidCard)
	assert.Contains(t, err.Error(), "line 2")

	// no partial results
	assert.Equal(t, "", stdout.String())
}

func Test_run_report(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	var stdout, stderr bytes.Buffer

	assert.NoError(t, run(testConfig("testdata/example.txt", "joker"), true, &stdout, &stderr, logger))
	assert.Equal(t, "5905\n", stdout.String())

	report := stderr.String()
	assert.Contains(t, report, "Winnings")
	assert.Contains(t, report, "KTJJT")
	assert.Contains(t, report, "Four of a kind")
	assert.Contains(t, report, "1100")
}

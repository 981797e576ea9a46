package main

import (
	"camelcards/internal/config"
	"camelcards/pkg/camel"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	input  = flag.String("input", "", "the hand list, overrides inputPath")
	mode   = flag.String("mode", "", "standard or joker, overrides mode")
	report = flag.Bool("report", false, "write the ranked hands to stderr")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	setupLogger(cfg)

	if *input != "" {
		cfg.InputPath = *input
	}

	if *mode != "" {
		cfg.Mode = *mode
	}

	log := logrus.WithField("runID", uuid.New().String())
	if err := run(cfg, *report, os.Stdout, os.Stderr, log); err != nil {
		log.WithError(err).Fatal("could not score hands")
	}
}

func run(cfg config.Config, withReport bool, stdout, stderr io.Writer, log logrus.FieldLogger) error {
	rules, err := camel.RulesFromMode(cfg.Mode)
	if err != nil {
		return err
	}

	path := cfg.ResolvedInputPath()
	log.WithFields(logrus.Fields{
		"input": path,
		"mode":  rules.Name,
	}).Info("scoring hands")

	hands, err := camel.ParseFile(path, rules)
	if err != nil {
		return err
	}

	ranked := camel.Rank(hands, rules)

	var total uint64
	for _, r := range ranked {
		total += r.Winnings()
	}

	for _, bucket := range camel.Buckets(hands, rules) {
		if len(bucket) == 0 {
			continue
		}

		log.WithFields(logrus.Fields{
			"handType": bucket[0].Type().String(),
			"count":    len(bucket),
		}).Debug("bucket")
	}

	if withReport {
		if err := writeReport(stderr, ranked, rules); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"hands": len(hands),
		"total": total,
	}).Info("scored hands")

	_, err = fmt.Fprintln(stdout, total)
	return err
}

func setupLogger(cfg config.Config) {
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.LogFormat()) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

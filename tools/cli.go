package main

import (
	"context"
	"os"

	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v3"
)

var logger = logrus.New()

type config struct {
	Capacity uint64
	LogLevel string
}

// loadConfig reads NJHEAP_* environment variables. Command line flags default
// to these values.
func loadConfig() config {
	v := viper.New()
	v.SetEnvPrefix("NJHEAP")
	v.SetDefault("capacity", heap.DefaultCapacity)
	v.SetDefault("log_level", logrus.InfoLevel.String())
	v.AutomaticEnv()

	return config{
		Capacity: v.GetUint64("capacity"),
		LogLevel: v.GetString("log_level"),
	}
}

func configureLogger(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	logger.SetLevel(parsed)
	return nil
}

func logLevelFlag(cfg config) cli.Flag {
	return &cli.StringFlag{
		Name:  "log-level",
		Value: cfg.LogLevel,
		Usage: "logrus level written to stderr",
	}
}

func main() {
	cfg := loadConfig()

	app := &cli.Command{
		Name:  "njheap",
		Usage: "order values and jobs with a binary heap",
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "sort lines read from stdin",
				UsageText: "njheap sort [--max] [--numeric] [--limit N] [--capacity N] < values",
				Action:    sortStdin,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "max",
						Usage: "emit the largest value first",
					},
					&cli.BoolFlag{
						Name:  "numeric",
						Usage: "compare lines as numbers",
					},
					&cli.UintFlag{
						Name:  "limit",
						Usage: "emit at most this many values, 0 for all",
					},
					&cli.UintFlag{
						Name:        "capacity",
						DefaultText: "10",
						Value:       cfg.Capacity,
						Usage:       "initial heap capacity",
					},
					logLevelFlag(cfg),
				},
			},
			{
				Name:      "queue",
				Usage:     "order \"priority: label\" jobs read from stdin",
				UsageText: "njheap queue [--max] < jobs",
				Action:    queueStdin,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "max",
						Usage: "emit the highest priority first",
					},
					&cli.UintFlag{
						Name:        "capacity",
						DefaultText: "10",
						Value:       cfg.Capacity,
						Usage:       "initial heap capacity",
					},
					logLevelFlag(cfg),
				},
			},
			{
				Name:      "binomial",
				Usage:     "probability of exactly x successes in n trials",
				UsageText: "njheap binomial n x p",
				Action:    binomial,
			},
			{
				Name:      "combination",
				Usage:     "number of k-element subsets of n elements",
				UsageText: "njheap combination n k",
				Action:    combination,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal(err)
	}
}

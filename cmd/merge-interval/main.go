package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/CytheY/merge-interval/harness"
	"github.com/CytheY/merge-interval/interval"
)

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "Print the input, result and expected intervals of every case",
}

func main() {
	app := cli.NewApp()
	app.Name = "merge-interval"
	app.Usage = "Runs the reference battery of interval merge fixtures and reports each outcome"
	app.Flags = []cli.Flag{verboseFlag}

	app.Action = func(c *cli.Context) error {
		return runBattery(c.Bool(verboseFlag.Name))
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("battery failed")
		os.Exit(1)
	}
}

func runBattery(verbose bool) error {
	outcomes := harness.Run(harness.Battery())

	var failed int

	for _, outcome := range outcomes {
		log := logrus.WithField("case", outcome.Case.Name)

		if verbose {
			printCase(outcome)
		}

		if outcome.Verdict == harness.Pass {
			log.Info("pass")

			continue
		}

		failed++

		log.WithField("verdict", outcome.Verdict).Error(outcome.Diff)

		if verbose {
			spew.Dump(outcome)
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, len(outcomes))
	}

	return nil
}

func printCase(outcome harness.Outcome) {
	fmt.Printf("----------- Input -----------\n%s", interval.Format(outcome.Case.Input))
	fmt.Printf("----------- Result ----------\n%s", interval.Format(outcome.Result))
	fmt.Printf("----------- Expected --------\n%s", interval.Format(outcome.Case.Expected))
}

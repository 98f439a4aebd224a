package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gopherplan/strips/planconfig"
)

// Exit codes per the documented CLI contract. Anything else (returned as a
// plain error from a deeper layer) is a runtime failure outside this set.
const (
	exitSolved           = 0
	exitArgumentError    = 1
	exitDomainMissing    = 2
	exitProblemMissing   = 3
	exitUnknownGenerator = 4
	exitParseFailure     = 5
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := exitArgumentError

	var configPath string
	var maxStatesFlag int
	var deadlineFlag time.Duration
	var maxStatesSet, deadlineSet bool

	root := &cobra.Command{
		Use:           "strips <domain-file> <problem-file> <lifted|grounded|automatic> <bfs|astar|dijkstras|statespace>",
		Short:         "classical STRIPS planner",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := planconfig.Default()
			if configPath != "" {
				loaded, err := planconfig.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			var opts []planconfig.Option
			if maxStatesSet {
				opts = append(opts, planconfig.WithMaxStates(maxStatesFlag))
			}
			if deadlineSet {
				opts = append(opts, planconfig.WithDeadline(deadlineFlag))
			}
			cfg = cfg.Apply(opts...)

			runID := uuid.New().String()
			log := logrus.WithField("run_id", runID)

			code, err := runPlanner(args[0], args[1], args[2], args[3], cfg, log)
			exitCode = code
			return err
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "optional YAML file with search tuning overrides")
	root.Flags().IntVar(&maxStatesFlag, "max-states", planconfig.DefaultMaxStates, "state-space forward-closure bound")
	root.Flags().DurationVar(&deadlineFlag, "deadline", planconfig.DefaultDeadline, "wall-clock deadline for grounding and search")

	originalRunE := root.RunE
	root.RunE = func(cmd *cobra.Command, args []string) error {
		maxStatesSet = cmd.Flags().Changed("max-states")
		deadlineSet = cmd.Flags().Changed("deadline")
		return originalRunE(cmd, args)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCode
}

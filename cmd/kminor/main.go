package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/s6dafabe/kminor/internal/graph"
	"github.com/s6dafabe/kminor/internal/minor"
)

func main() {
	var debug bool
	var timeout time.Duration

	rootCmd := &cobra.Command{
		Use:   "kminor <graph-path> <k>",
		Short: "kminor",
		Long:  `Decide whether a graph contains K_k as a minor.`,
		Args:  cobra.ExactArgs(2),

		PreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runKMinor(args[0], args[1], timeout)
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "abandon the search after this duration and report undetermined")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runKMinor(graphPath, kArg string, timeout time.Duration) error {
	k, err := strconv.Atoi(kArg)
	if err != nil {
		return fmt.Errorf("kminor: invalid k %q: %w", kArg, err)
	}

	f, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("kminor: %w", err)
	}
	defer f.Close()

	gr, err := graph.ReadDIMACS(f)
	if err != nil {
		return fmt.Errorf("kminor: %w", err)
	}

	checker, err := minor.NewChecker(gr, k, minor.WithTracer(minor.LoggingTracer{Logger: log.StandardLogger()}))
	if err != nil {
		return fmt.Errorf("kminor: %w", err)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := checker.Run(ctx); err != nil {
		return fmt.Errorf("kminor: %w", err)
	}

	contains := checker.ContainsMinor()
	fmt.Printf("Contains minor: %t\n", contains)
	if contains {
		fmt.Printf("Assignment: %v\n", checker.Solution())
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "pathtrace",
		Short:        "Run path simulations and inspect the math behind them",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	logger := func(cmd *cobra.Command) *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}
	root.AddCommand(newRunCmd(logger), newSolveCmd(), newCalcCmd())
	return root
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, arg)
		}
		out[i] = f
	}
	return out, nil
}

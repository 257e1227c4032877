package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/internal/scenario"
)

func newRunCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		frames    int
		maxFrames int
		every     int
	)
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Run a scenario and print sampled positions as CSV",
		Long: `Run loads a YAML or TOML scenario, advances it frame by frame and prints
the position and state of every path as CSV.

Unless --frames or the scenario sets a frame count, the scenario runs until
every path has completed, but for no more than --max-frames frames.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every < 1 {
				return fmt.Errorf("--every must be at least 1, got %d", every)
			}
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if frames == 0 {
				frames = s.Frames
			}
			sim, err := s.Build(logger(cmd))
			if err != nil {
				return err
			}
			tick, err := calc.FractionFromFloat(s.Config.Tick, s.Config.MaxDenominator)
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			sample := func(frame uint64, elapsed float64) {
				for _, name := range sim.Names() {
					p, _ := sim.Path(name)
					pos := p.Position()
					w.Write([]string{
						strconv.FormatUint(frame, 10),
						strconv.FormatFloat(elapsed, 'g', -1, 64),
						name,
						strconv.FormatFloat(pos.X, 'g', -1, 64),
						strconv.FormatFloat(pos.Y, 'g', -1, 64),
						p.State().String(),
					})
				}
			}
			w.Write([]string{"frame", "time", "path", "x", "y", "state"})
			sample(0, 0)

			var failed int
			for i := 1; ; i++ {
				if frames > 0 && i > frames {
					break
				}
				if frames == 0 && (sim.Done() || i > maxFrames) {
					break
				}
				if err := sim.Step(s.Config.Tick); err != nil {
					// Step has logged the failing paths; the others keep moving.
					failed++
				}
				if i%every == 0 {
					at, err := tick.Mul(calc.Whole(int64(i)))
					if err != nil {
						return err
					}
					sample(sim.Keeper().Frame(), at.Float64())
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d frames had paths that failed to advance", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "number of frames to run, overriding the scenario")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10_000, "frame limit when running until all paths complete")
	cmd.Flags().IntVar(&every, "every", 1, "print every n-th frame")
	return cmd
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/g-m-twostay/go-trees/Bench"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the engines on a generated dataset and save the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			cfg, err := Bench.LoadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			data, err := Bench.Generate(cfg.Dataset, cfg.Size, cfg.MaxValue, cfg.Seed)
			if err != nil {
				return err
			}
			log.Info("dataset ready", "kind", cfg.Dataset, "keys", len(data), "steps", cfg.Steps, "engines", cfg.Engines)

			res, err := Bench.NewRunner(cfg, log).Run(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			if err = Bench.Render(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			path, err := res.Save(cfg.OutDir, cfg.Format, time.Now())
			if err != nil {
				return err
			}
			log.Info("results saved", "path", path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int("size", Bench.DefaultSize, "number of keys")
	f.Int("steps", Bench.DefaultSteps, "number of measured prefixes")
	f.String("dataset", string(Bench.DefaultDataset), "key stream: ascending, descending, uniform or skewed")
	f.Int("max-value", Bench.DefaultMaxValue, "keys are drawn from [0, max-value)")
	f.Int("searches", Bench.DefaultSearches, "searches timed after each step")
	f.Uint64("seed", Bench.DefaultSeed, "seed of the dataset, the queries and the treap priorities")
	f.StringSlice("engines", Bench.EngineNames(), "engines to run: "+strings.Join(Bench.EngineNames(), ", "))
	f.String("out", Bench.DefaultOutDir, "directory results are saved into")
	f.String("format", Bench.DefaultFormat, "results format: json or yaml")
	return cmd
}

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-keyset/pkg/encoding"
	"github.com/huynhanx03/go-keyset/pkg/keyset"
	"github.com/huynhanx03/go-keyset/pkg/report"
)

var analyzeIn string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the gap-tolerance sweep over a binary key file",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(analyzeIn)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		keys, err := encoding.DecodeKeys(raw)
		if err != nil {
			return err
		}

		c := keyset.Classifier{Cutoff: cfg.Analyzer.Cutoff, Divisor: cfg.Analyzer.Divisor}
		a, err := report.Run(cmd.Context(), c, keys, cfg.Analyzer.Tolerances)
		if err != nil {
			return err
		}
		log.Debug("classified keys",
			zap.Int("total", len(keys)),
			zap.Int("low", a.Low),
			zap.Int("high", a.High))

		return a.Render(os.Stdout)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeIn, "in", "i", "keys.hex", "binary key input file")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-keyset/pkg/logger"
	"github.com/huynhanx03/go-keyset/pkg/settings"
)

var (
	cfgPath string
	verbose bool

	cfg *settings.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "keyset",
	Short: "Analyze how integer keys cluster into contiguous groups",
	Long: `keyset ingests integer keys, splits them into a low range and a rescaled
high range, and reports how the high range clusters into contiguous groups
under a sweep of gap tolerances.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = settings.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logger.LogLevel = "debug"
		}
		log, err = logger.New(cfg.Logger)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"armory/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "armory",
	Short: "Item classification and QA corpus synthesis for inventory SFT data",
	Long: "Armory classifies game inventory item names into weapons, armor,\n" +
		"accessories, and ammunition, and synthesizes deterministic\n" +
		"question/answer corpora from the classified population.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if err := level.UnmarshalText([]byte(rootFlags.logLevel)); err != nil {
			level = slog.LevelInfo
		}
		logging.Init(level, rootFlags.logFormat, nil)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

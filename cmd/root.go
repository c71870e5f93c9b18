package cmd

import (
	"fmt"

	"textcat/pkg/config"
	"textcat/pkg/logging"
	"textcat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootLogger *zap.Logger
	cfg        *config.Config
	cfgPath    string
	debugMode  bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "textcat",
	Short: "textcat concatenates plain-text files into one labeled output",
	Long: `textcat combines multiple plain-text files into a single output file,
labeling each section with its source filename. Files come either from a
folder (allowed text files, natural order) or from a user-authored list
file with shell-like path syntax.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		// Reconfigure logging only when the run asks for something
		// other than the bootstrap defaults.
		if debugMode || cfg.LogLevel != "info" {
			if err := logging.Setup(debugMode, cfg.LogLevel, "textcat", version.Get().Version); err != nil {
				return fmt.Errorf("failed to configure logging: %w", err)
			}
			rootLogger = logging.Logger
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML config file (allow-list and output defaults)")
	RootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

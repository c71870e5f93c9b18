package cmd

import (
	"fmt"
	"path/filepath"

	"textcat/pkg/classify"
	"textcat/pkg/concat"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// folderCmd concatenates every allowed text file found directly inside
// a folder, in natural filename order.
var folderCmd = &cobra.Command{
	Use:   "folder <dir>",
	Short: "Concatenate all allowed text files in a folder",
	Long: `Concatenate every allowed plain-text file found directly inside the
given folder (no recursion) into one output file, in natural filename
order. When --output is omitted the result is written to
<folder_name>_concatenated.txt in the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		folder := args[0]
		if output == "" {
			output = defaultOutputName(filepath.Base(filepath.Clean(folder)))
		}

		engine := concat.NewEngine(classify.New(cfg.AllowRule()), rootLogger)

		set, err := engine.Discover(folder)
		if err != nil {
			return err
		}
		if set.Len() == 0 {
			return fmt.Errorf("no files to concatenate in %s", folder)
		}

		result, err := engine.Concatenate(set, output)
		if err != nil {
			return err
		}

		rootLogger.Info("Folder concatenation finished",
			zap.String("folder", folder),
			zap.String("output", output),
			zap.Int("written", len(result.Succeeded)),
			zap.Int("failed", len(result.Failed)))
		renderResult(cmd.OutOrStdout(), result, output)
		return nil
	},
}

// defaultOutputName derives the deterministic output filename used when
// --output is omitted: the config override if set, otherwise
// <stem>_concatenated.txt in the working directory.
func defaultOutputName(stem string) string {
	if cfg != nil && cfg.Output != "" {
		return cfg.Output
	}
	return stem + "_concatenated.txt"
}

func init() {
	folderCmd.Flags().StringP("output", "o", "", "Output file path")
	RootCmd.AddCommand(folderCmd)
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"textcat/pkg/classify"
	"textcat/pkg/concat"
	"textcat/pkg/listfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd concatenates the files named by a list file, preserving the
// list's order unless --sort is given.
var listCmd = &cobra.Command{
	Use:   "list <listfile>",
	Short: "Concatenate the files named by a list file",
	Long: `Read a list file naming one path per line and concatenate the files it
resolves to, in list order. List files support comments (# or ;), blank
lines, single- or double-quoted paths, environment-variable and ~
expansion, and paths relative to the list file's directory. Entries that
are missing, not allowed, duplicated, or malformed are reported and
skipped. When --output is omitted the result is written to
<listfile_stem>_concatenated.txt in the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		sortFiles, err := cmd.Flags().GetBool("sort")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		listPath := args[0]
		if output == "" {
			stem := strings.TrimSuffix(filepath.Base(listPath), filepath.Ext(listPath))
			output = defaultOutputName(stem)
		}

		classifier := classify.New(cfg.AllowRule())
		parser := listfile.NewParser(classifier, rootLogger)

		set, report, err := parser.Parse(listPath)
		if err != nil {
			return err
		}
		renderReport(cmd.OutOrStdout(), report)
		if set.Len() == 0 {
			return fmt.Errorf("no files to concatenate in %s", listPath)
		}
		if sortFiles {
			set.SortNatural()
		}

		engine := concat.NewEngine(classifier, rootLogger)
		result, err := engine.Concatenate(set, output)
		if err != nil {
			return err
		}

		rootLogger.Info("List concatenation finished",
			zap.String("listFile", listPath),
			zap.String("output", output),
			zap.Int("written", len(result.Succeeded)),
			zap.Int("failed", len(result.Failed)))
		renderResult(cmd.OutOrStdout(), result, output)
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("output", "o", "", "Output file path")
	listCmd.Flags().Bool("sort", false, "Reorder entries in natural filename order instead of list order")
	RootCmd.AddCommand(listCmd)
}

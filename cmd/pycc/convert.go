package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pycc/internal/diagfmt"
	"pycc/internal/driver"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file.py...",
	Short: "Convert Python sources to C or C++",
	Long:  `Convert translates one or more Python files; multiple files run concurrently`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("target", "c", "target dialect (c|cpp)")
	convertCmd.Flags().StringP("output", "o", "", "output directory (default: next to each source)")
	convertCmd.Flags().Bool("json", false, "emit diagnostics as JSON on stdout")
	convertCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	convertCmd.Flags().Int("jobs", 0, "parallel conversions (0 = number of CPUs)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	prof, ok := driver.ProfileFor(target)
	if !ok {
		return fmt.Errorf("unknown target %q (expected c or cpp)", target)
	}

	outDir, _ := cmd.Flags().GetString("output")
	asJSON, _ := cmd.Flags().GetBool("json")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	opts := driver.Options{MaxDiagnostics: maxDiagnostics}
	if !noCache {
		if cache, err := driver.OpenDiskCache("pycc"); err == nil {
			opts.Cache = cache
		}
	}

	results, err := driver.ConvertFiles(cmd.Context(), args, prof, opts, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, fr := range results {
		if fr.Result != nil && fr.Result.Bag.Len() > 0 {
			reportDiagnostics(cmd, fr, asJSON)
		}
		if fr.Err != nil {
			failed++
			if !errors.Is(fr.Err, driver.ErrInvalidSource) {
				fmt.Fprintf(os.Stderr, "%s: %v\n", fr.Path, fr.Err)
			}
			continue
		}

		outPath := outputPath(fr.Path, outDir, prof.Name())
		if err := os.WriteFile(outPath, []byte(fr.Result.Code), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", fr.Path, outPath)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failed, len(results))
	}
	return nil
}

func reportDiagnostics(cmd *cobra.Command, fr driver.FileResult, asJSON bool) {
	if asJSON {
		_ = diagfmt.JSON(cmd.OutOrStdout(), fr.Result.Bag, fr.Result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		})
		return
	}
	diagfmt.Pretty(os.Stderr, fr.Result.Bag, fr.Result.FileSet, diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 1,
	})
}

// outputPath выбирает имя целевого файла: расширение диалекта, каталог
// из -o либо каталог исходника.
func outputPath(srcPath, outDir, profile string) string {
	ext := ".c"
	if profile == "cpp" {
		ext = ".cpp"
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), ".py") + ext
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(srcPath), base)
}

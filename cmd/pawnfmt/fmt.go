package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pawnfmt/internal/config"
	"pawnfmt/internal/diagfmt"
	"pawnfmt/internal/driver"
	"pawnfmt/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format Pawn source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("semicolons", false, "write inferred statement terminators as real semicolons")
	fmtCmd.Flags().Int("tab-width", 0, "tab stop width used for column tracking (overrides pawnfmt.toml)")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the formatting result cache")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opt, err := resolveOptions(cmd, maxDiagnostics)
	if err != nil {
		return err
	}

	paths, err := driver.CollectFiles(args, opt.Extensions)
	if err != nil {
		return err
	}

	// Кэш опционален: без него просто форматируем заново каждый раз.
	cache, _ := driver.OpenDiskCache("pawnfmt")

	fileSet, results, err := driver.FormatPaths(cmd.Context(), paths, cache, opt)
	if err != nil {
		return err
	}

	printDiagnostics(cmd, fileSet, results)

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		applyFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check); err != nil {
			return err
		}
		if !check {
			rewriteChanged(results, &hasErrors)
		}
		for _, res := range results {
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// resolveOptions собирает настройки из pawnfmt.toml и флагов команды.
func resolveOptions(cmd *cobra.Command, maxDiagnostics int) (driver.Options, error) {
	cfg, _, err := config.Resolve(".")
	if err != nil {
		return driver.Options{}, err
	}

	opt := driver.Options{
		TabWidth:       cfg.Format.TabWidth,
		AddSemicolons:  cfg.Format.AddSemicolons,
		MaxDiagnostics: maxDiagnostics,
		Extensions:     cfg.Files.Extensions,
	}

	if cmd.Flags().Changed("tab-width") {
		tabWidth, err := cmd.Flags().GetInt("tab-width")
		if err != nil {
			return driver.Options{}, err
		}
		if tabWidth <= 0 {
			return driver.Options{}, fmt.Errorf("fmt: --tab-width must be positive")
		}
		opt.TabWidth = tabWidth
	}
	if cmd.Flags().Changed("semicolons") {
		addSemis, err := cmd.Flags().GetBool("semicolons")
		if err != nil {
			return driver.Options{}, err
		}
		opt.AddSemicolons = addSemis
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return driver.Options{}, err
	}
	opt.NoCache = noCache
	return opt, nil
}

func printDiagnostics(cmd *cobra.Command, fileSet *source.FileSet, results []driver.Result) {
	opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr)}
	for _, res := range results {
		if res.Bag == nil || (!res.Bag.HasErrors() && !res.Bag.HasWarnings()) {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, fileSet, opts)
	}
}

func renderFmtStdout(results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			*hasErrors = true
			continue
		}
		_, _ = os.Stdout.Write(res.Output)
	}
}

func applyFmtText(results []driver.Result, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			*hasErrors = true
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if !res.Changed {
			continue
		}
		if err := os.WriteFile(res.Path, res.Output, 0o644); err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, err)
			continue
		}
		*hasChanges = true
		if !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func rewriteChanged(results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		if !res.Changed || (res.Bag != nil && res.Bag.HasErrors()) {
			continue
		}
		if err := os.WriteFile(res.Path, res.Output, 0o644); err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, err)
		}
	}
}

func renderFmtJSON(results []driver.Result, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Errors   int    `json:"errors,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Bag != nil && res.Bag.HasErrors() {
			jr.Errors = res.Bag.Len()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

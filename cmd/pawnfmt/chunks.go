package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pawnfmt/internal/config"
	"pawnfmt/internal/diag"
	"pawnfmt/internal/diagfmt"
	"pawnfmt/internal/lexer"
	"pawnfmt/internal/source"
	"pawnfmt/internal/vbrace"
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [flags] file.pwn",
	Short: "Dump the chunk stream of a Pawn source file",
	Long:  `Chunks scans a Pawn source file and prints its chunk stream, including the virtual braces and semicolons the normalizer inserts`,
	Args:  cobra.ExactArgs(1),
	RunE:  runChunks,
}

func init() {
	chunksCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	chunksCmd.Flags().Bool("raw", false, "print the scanned stream without delimiter normalization")
}

func runChunks(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	cfg, _, err := config.Resolve(".")
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(filePath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	sf := fileSet.Get(id)

	bag := diag.NewBag(maxDiagnostics)
	rep := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	stream := lexer.Scan(sf, lexer.Options{Reporter: rep, TabWidth: cfg.Format.TabWidth})
	if !raw {
		vbrace.Normalize(stream, &diag.BagReporter{Bag: bag})
	}

	// Выводим диагностику в stderr, если есть
	if bag.HasErrors() || bag.HasWarnings() {
		bag.Sort()
		opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr)}
		diagfmt.Pretty(os.Stderr, bag, fileSet, opts)
	}

	// Выводим чанки в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatChunksPretty(os.Stdout, stream, colorEnabled(cmd, os.Stdout))
	case "json":
		return diagfmt.FormatChunksJSON(os.Stdout, stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

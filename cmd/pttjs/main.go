// Package main provides the CLI entry point for pttjs-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pttjs-go/pkg/pttjs"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/models"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/output"
	"github.com/ukaji3/pttjs-go/pkg/pttjs/xlsx"
)

// Output formats.
const (
	formatPTTJS = "pttjs"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCBOR  = "cbor"
	formatXLSX  = "xlsx"
)

type config struct {
	outputPath string
	to         string
	pretty     bool
	showIndex  bool
	showPages  bool
	direct     bool
	batchSize  int
	verbose    bool
	pagesDir   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "pttjs [input]",
		Short: "Convert PTTJS table documents",
		Long: `pttjs-go reads PTTJS documents (or xlsx workbooks) and writes them
as PTTJS, JSON, YAML, CBOR or xlsx. Reads stdin when no input is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVarP(&cfg.to, "to", "t", "", "Output format: pttjs, json, yaml, cbor, xlsx (default: from output extension, else pttjs)")
	flags.BoolVar(&cfg.pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVar(&cfg.showIndex, "show-index", false, "Write the explicit [x|y] index of every cell")
	flags.BoolVar(&cfg.showPages, "show-pages", false, "Write page headers even for a single page")
	flags.BoolVar(&cfg.direct, "direct", false, "Process without batching or yielding")
	flags.IntVar(&cfg.batchSize, "batch-size", 0, "Lines per batch in cooperative mode (default 50000)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log debug information")
	flags.StringVar(&cfg.pagesDir, "pages-dir", "", "Directory for per-page JSON output files")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, cfg *config) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := pttjs.Options{
		Mode:      pttjs.ModeCooperative,
		BatchSize: cfg.batchSize,
		Logger:    log,
		ShowIndex: &cfg.showIndex,
		ShowPages: &cfg.showPages,
	}
	if cfg.direct {
		opts.Mode = pttjs.ModeDirect
	}

	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	store, err := readInput(cmd, args, opts, log)
	if err != nil {
		return err
	}
	log.Debug("parsed document",
		"pages", len(store.Pages),
		"typings", len(store.Typings),
		"expressions", len(store.Expressions),
		"styles", len(store.Styles))

	if format == formatXLSX {
		if cfg.outputPath == "" {
			return fmt.Errorf("%w: xlsx output requires --output", pttjs.ErrUnsupportedFormat)
		}
		if err := xlsx.WriteFile(store, cfg.outputPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	} else {
		data, err := render(store, format, cfg, opts)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}

		if cfg.outputPath != "" {
			if err := os.WriteFile(cfg.outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		} else if cfg.pagesDir == "" {
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
		}
	}

	// Write per-page files
	if cfg.pagesDir != "" {
		if err := writePageFiles(store, cfg.pagesDir, cfg.pretty); err != nil {
			return fmt.Errorf("failed to write page files: %w", err)
		}
	}

	return nil
}

func outputFormat(cfg *config) (string, error) {
	format := strings.ToLower(cfg.to)
	if format == "" {
		switch strings.ToLower(filepath.Ext(cfg.outputPath)) {
		case ".json":
			format = formatJSON
		case ".yaml", ".yml":
			format = formatYAML
		case ".cbor":
			format = formatCBOR
		case ".xlsx":
			format = formatXLSX
		default:
			format = formatPTTJS
		}
	}

	switch format {
	case formatPTTJS, formatJSON, formatYAML, formatCBOR, formatXLSX:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s (must be pttjs, json, yaml, cbor or xlsx)", pttjs.ErrUnsupportedFormat, format)
	}
}

func readInput(cmd *cobra.Command, args []string, opts pttjs.Options, log *slog.Logger) (*models.Store, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		store, _ := pttjs.ParseWithOptions(string(data), opts)
		return store, nil
	}

	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	if strings.EqualFold(filepath.Ext(inputPath), ".xlsx") {
		store, err := xlsx.ReadFile(inputPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to read workbook: %w", err)
		}
		return store, nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	store, _ := pttjs.ParseWithOptions(string(data), opts)
	return store, nil
}

func render(store *models.Store, format string, cfg *config, opts pttjs.Options) ([]byte, error) {
	switch format {
	case formatJSON:
		return output.ToJSON(store, cfg.pretty)
	case formatYAML:
		return output.ToYAML(store)
	case formatCBOR:
		return output.ToCBOR(store)
	default:
		return []byte(pttjs.SerializeWithOptions(store, opts)), nil
	}
}

func writePageFiles(store *models.Store, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, page := range store.Pages {
		jsonData, err := output.PageToJSON(page, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, strings.TrimPrefix(page.ID, "@")+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

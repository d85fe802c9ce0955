package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"slopcc/internal/arena"
	"slopcc/internal/config"
	"slopcc/internal/diagfmt"
	"slopcc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.c ...",
	Short: "Tokenize C source files",
	Long:  `Tokenize breaks source files into preprocessing tokens. Pass "-" to read from standard input.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-cache", false, "bypass the on-disk token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := driver.Options{
		MaxDiagnostics: cfg.Diagnostics.Max,
		Arena:          arena.WithChunkSize(cfg.Arena.ChunkSize),
	}
	if maxFlag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); maxFlag > 0 {
		opts.MaxDiagnostics = maxFlag
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Cache.Tokens && !noCache {
		cache, err := driver.OpenTokenCache("slopcc")
		if err != nil {
			return fmt.Errorf("open token cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := collect(args, opts)
	if err != nil {
		return err
	}

	for _, res := range results {
		if !res.Bag.Empty() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color: useColor(cmd, cfg, os.Stderr),
			})
		}

		switch format {
		case "pretty":
			err = diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, res.FileSet)
		case "json":
			err = diagfmt.FormatTokensJSON(os.Stdout, res.Tokens, res.FileSet)
		}
		if err != nil {
			return err
		}
	}

	if driver.MergeBags(results).HasErrors() {
		// Diagnostics already explain the failure; a cobra error would
		// just repeat them.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return errors.New("tokenization produced errors")
	}
	return nil
}

// collect tokenizes every argument, reading stdin for "-".
func collect(args []string, opts driver.Options) ([]*driver.Result, error) {
	var paths []string
	var results []*driver.Result
	for _, arg := range args {
		if arg != "-" {
			paths = append(paths, arg)
			continue
		}
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		results = append(results, driver.TokenizeBytes("", content, opts))
	}
	if len(paths) > 0 {
		fromFiles, err := driver.TokenizeAll(paths, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, fromFiles...)
	}
	return results, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(".", path)
}

func useColor(cmd *cobra.Command, cfg config.Config, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "auto" || mode == "" {
		mode = cfg.Diagnostics.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(f)
	}
}

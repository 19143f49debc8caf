// Package main implements the j2py command line translator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/j2pylang/j2py"
)

var (
	warnMode      bool
	privateNames  bool
	plainEquality bool
	output        string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "j2py",
		Short: "Translate a Java subset to Python",
		Long: `j2py is a best-effort source-to-source translator from a small
statically-typed class-based Java subset to Python.`,
	}

	translateCmd := &cobra.Command{
		Use:   "translate <file.java>",
		Short: "Translate one source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranslate,
	}
	translateCmd.Flags().BoolVarP(&warnMode, "warn", "w", false, "accumulate diagnostics instead of halting on the first")
	translateCmd.Flags().BoolVar(&privateNames, "private", false, "prefix private variable names with an underscore")
	translateCmd.Flags().BoolVar(&plainEquality, "plain-equality", false, "emit == instead of is")
	translateCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	translateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log translation phases")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the j2py version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("j2py version %s\n", j2py.Version)
		},
	}

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filename := args[0]
	if ext := filepath.Ext(filename); ext != ".java" {
		return fmt.Errorf("file must have a .java extension, got %q", ext)
	}

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	opts := j2py.Options{
		Fatal:         !warnMode,
		Private:       privateNames,
		PlainEquality: plainEquality,
	}
	start := time.Now()
	result, err := j2py.TranslateWithOptions(string(content), opts)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "translation failed:")
		fmt.Fprintln(os.Stderr, err)
		cmd.SilenceErrors = true
		return err
	}
	logger.Info("translated",
		zap.String("file", filename),
		zap.Int("bytes", len(result)),
		zap.Duration("elapsed", time.Since(start)))

	if output != "" {
		if err := os.WriteFile(output, []byte(result), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		logger.Info("output written", zap.String("file", output))
		return nil
	}
	fmt.Print(result)
	return nil
}

// Command bx compiles a BX source file to three-address code.
//
// The generated instructions are written as JSON next to the input file
// (file.bx -> file.tac.json) for consumption by a machine-code backend.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bxlang/bx"
	"github.com/bxlang/bx/codegen"
	"github.com/bxlang/bx/diag"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagBottomUp    bool
	flagTopDown     bool
	flagOutput      string
	flagDisassemble bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "bx [flags] file.bx",
	Short:        "Compile a BX program to three-address code",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagTopDown, "tmm", false, "use the top-down muncher (default)")
	rootCmd.Flags().BoolVar(&flagBottomUp, "bmm", false, "use the bottom-up muncher")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: <file>.tac.json)")
	rootCmd.Flags().BoolVar(&flagDisassemble, "dis", false, "print a disassembly to stdout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log phase progress")
	rootCmd.MarkFlagsMutuallyExclusive("tmm", "bmm")
}

func run(cmd *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	source := string(data)

	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}

	discipline := codegen.TopDown
	if flagBottomUp {
		discipline = codegen.BottomUp
	}

	reporter := diag.NewReporter()
	unit, err := bx.Compile(cmd.Context(), source,
		bx.WithFilename(filename),
		bx.WithDiscipline(discipline),
		bx.WithReporter(reporter),
		bx.WithLogger(logger),
	)
	// Surface every accumulated diagnostic before deciding the exit
	// status, positions included where available.
	diag.NewFormatter(filename, source).Render(os.Stderr, reporter)
	if err != nil {
		return fmt.Errorf("compilation failed with %d error(s)", reporter.ErrorCount())
	}

	if flagDisassemble {
		fmt.Print(unit.String())
	}

	output := flagOutput
	if output == "" {
		output = strings.TrimSuffix(filename, ".bx") + ".tac.json"
	}
	encoded, err := json.MarshalIndent(unit, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, append(encoded, '\n'), 0o644); err != nil {
		return err
	}
	logger.Debug().Str("output", output).Msg("wrote IR")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meowind/meowind/ast"
	"github.com/meowind/meowind/errordefs"
	"github.com/meowind/meowind/lexer"
	"github.com/meowind/meowind/parser"
	"github.com/meowind/meowind/source"
)

// newRootCmd builds the single-command CLI surface of spec section 6: one
// positional source path, plus the debug dump flags this expansion adds.
func newRootCmd(log zerolog.Logger) *cobra.Command {
	var dumpTokens, dumpAST bool

	cmd := &cobra.Command{
		Use:           "meowindc <path>",
		Short:         "Lex and parse a Meowind source file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log, args[0], dumpTokens, dumpAST)
		},
	}

	cmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print every token the lexer produces")
	cmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed project tree")

	return cmd
}

// exactlyOnePath replaces cobra.ExactArgs(1) so the wire text of spec
// section 6 ("path not provided", "expected 1 argument, got N") is exact,
// rather than whatever cobra's own default messages say.
func exactlyOnePath(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return fail(errordefs.CommandLine(errordefs.InvalidArguments).Msg("path not provided"))
	case 1:
		return nil
	default:
		return fail(errordefs.CommandLine(errordefs.InvalidArguments).Msg("expected 1 argument, got %d", len(args)))
	}
}

func run(log zerolog.Logger, path string, dumpTokens, dumpAST bool) error {
	text, err := readSource(path)
	if err != nil {
		return err
	}
	src := source.New(path, text)

	log.Info().Str("path", path).Msg("lexing started")
	lx := lexer.Tokenize(src)
	log.Info().Int("tokens", len(lx.Tokens)).Int("errors", len(lx.Errors)).Msg("lexing finished")

	if dumpTokens {
		for _, tok := range lx.Tokens {
			fmt.Println(tok.String())
		}
	}

	lexErrs := errordefs.List[*errordefs.SyntaxError]{Items: lx.Errors}
	lexErrs.PrintAndExitIfAny()

	log.Info().Msg("parsing started")
	p := parser.Parse(lx.Tokens, src, projectName(path), ast.Program)
	log.Info().Int("items", len(p.Project.Root.Items)).Int("errors", len(p.Errors)).Msg("parsing finished")

	if dumpAST {
		for _, item := range p.Project.Root.Items {
			fmt.Printf("%+v\n", item)
		}
	}

	parseErrs := errordefs.List[*errordefs.SyntaxError]{Items: p.Errors}
	parseErrs.PrintAndExitIfAny()

	return nil
}

func projectName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// readSource implements the three failure shapes spec section 6 names:
// a missing directory, a missing file within an existing directory, and
// any other I/O failure reported with the underlying os error text.
func readSource(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return "", fail(errordefs.CommandLine(errordefs.FailedToReadFile).
				Msg("specified directory does not exist"))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fail(errordefs.CommandLine(errordefs.FailedToReadFile).
				Msg("file %s in directory %s does not exist", filepath.Base(path), dir))
		}
		return "", fail(errordefs.CommandLine(errordefs.FailedToReadFile).
			Msg("failed to read file: %s", err))
	}

	return string(data), nil
}

// fail prints a driver-level diagnostic and signals cobra to exit non-zero
// without it printing its own error line (SilenceErrors is set on the
// root command).
func fail(err *errordefs.CommandLineError) error {
	fmt.Fprintln(os.Stderr, err.Error())
	return err
}

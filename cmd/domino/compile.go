package main

import (
	"io"
	"os"

	"github.com/npillmayer/domino"
	"github.com/npillmayer/domino/rules"
	"github.com/spf13/cobra"
)

func newCompileCommand() *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "compile [stylesheet.css]",
		Short: "Compile the placement rules of a stylesheet into a bundle",
		Long: `Compile extracts the placement rules of a CSS stylesheet and writes them
as a JSON or YAML bundle. Without an argument, CSS is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rules.ParseFormat(format)
			if !cmd.Flags().Changed("format") && output != "" {
				f, err = rules.FormatForPath(output), nil
			}
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			return runCompile(in, cmd.OutOrStdout(), output, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default is stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "bundle format: json or yaml")
	return cmd
}

func runCompile(in io.Reader, stdout io.Writer, output string, format rules.Format) (err error) {
	out := stdout
	if output != "" {
		var file *os.File
		if file, err = os.Create(output); err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		out = file
	}
	ss, err := domino.Compile(in, out, format)
	if err != nil {
		return err
	}
	tracer().Infof("compiled %d base rules and %d media layers", ss.Rules.Len(), len(ss.MediaQueries))
	if ss.Empty() {
		tracer().Errorf("stylesheet contains no placement rules")
	}
	return nil
}

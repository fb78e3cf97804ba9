package main

import (
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/mhvk/erfagen"
	"github.com/mhvk/erfagen/generate"
	"github.com/mhvk/erfagen/log"
	"github.com/mhvk/erfagen/tracing"
)

func main() {
	var (
		output        string
		section       string
		prefix        string
		traceEndpoint string
		traceStdout   bool
		verbose       bool
	)

	root := &cobra.Command{
		Use:   "erfagen [srcdir|erfa.c]",
		Short: "Generate the ERFA binding layer from the C sources",
		Long: "erfagen walks the ERFA header for one documentation section, extracts\n" +
			"every listed function's signature and argument directions from the C\n" +
			"sources, and renders the binding layer. The argument is either a\n" +
			"directory with one file per function or a single combined erfa.c;\n" +
			"erfa.h must sit next to it.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetVerbose(verbose)
			ctx := cmd.Context()

			if traceEndpoint != "" || traceStdout {
				tp, shutdown, err := tracing.NewProvider(ctx, traceEndpoint, "erfagen")
				if err != nil {
					return err
				}
				defer shutdown()
				otel.SetTracerProvider(tp)
			}

			src := args[0]
			headerDir := src
			if info, err := os.Stat(src); err != nil {
				return errors.Wrap(err, "reading source path")
			} else if !info.IsDir() {
				headerDir = filepath.Dir(src)
			}

			header, err := os.ReadFile(filepath.Join(headerDir, "erfa.h"))
			if err != nil {
				return errors.Wrap(err, "reading header")
			}

			funcs, err := generate.ScanHeader(string(header), section)
			if err != nil {
				return err
			}
			log.Info().Int("functions", len(funcs)).Str("section", section).Msg("enumerated header")

			ex := generate.NewExtractor(erfagen.DefaultTypes(), prefix)
			model, err := ex.Batch(ctx, src, funcs)
			if err != nil {
				return err
			}

			if output == "" {
				output = strcase.ToSnake(section) + ".pyx"
			}
			err = generate.NewWriter(model, output).Write()
			if err != nil {
				return err
			}
			log.Info().Str("output", output).Msg("wrote binding layer")
			return nil
		},
	}

	root.Flags().StringVarP(&output, "output", "o", "", "output filename (default: <section>.pyx)")
	root.Flags().StringVar(&section, "section", "Astronomy", "header section to process")
	root.Flags().StringVar(&prefix, "prefix", "era", "library function name prefix")
	root.Flags().StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP http endpoint for trace export")
	root.Flags().BoolVar(&traceStdout, "trace-stdout", false, "export trace spans to stdout")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
}

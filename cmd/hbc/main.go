// Command hbc is the CLI front-end for the compressor core: it parses
// arguments, reads the input file, calls into internal/streamcodec, writes
// the output file, and reports timing when asked to. None of the codec
// logic lives here — argument parsing, filesystem I/O, and verbosity
// reporting stay out of the core package entirely.
package main

import (
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/scigolib/compressor"
	"github.com/scigolib/compressor/internal/cliutil"
)

func main() {
	var (
		mode    string
		input   string
		output  string
		verbose bool
	)

	pflag.StringVarP(&mode, "mode", "m", "", "compress (c) or decompress (d)")
	pflag.StringVarP(&input, "input", "i", "", "input file path")
	pflag.StringVarP(&output, "output", "o", "", "output file path")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "print timing and ratio information")
	pflag.Parse()

	log := cliutil.NewLogger(verbose)

	if args := pflag.Args(); mode == "" && len(args) > 0 {
		mode = args[0]
	}
	if input == "" && len(pflag.Args()) > 1 {
		input = pflag.Args()[1]
	}
	if output == "" && len(pflag.Args()) > 2 {
		output = pflag.Args()[2]
	}

	switch mode {
	case "c", "compress":
		mode = "compress"
	case "d", "decompress":
		mode = "decompress"
	default:
		log.Fatal().Str("mode", mode).Msg("mode must be compress/c or decompress/d")
	}
	if input == "" || output == "" {
		log.Fatal().Msg("both --input and --output are required")
	}

	//nolint:gosec // G304: user-provided path is the whole point of this CLI
	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("could not read input file")
	}

	start := time.Now()

	var result []byte
	switch mode {
	case "compress":
		result = compressor.Compress(data)
	case "decompress":
		result, err = compressor.Decompress(data)
		if err != nil {
			log.Fatal().Err(err).Msg("could not decompress input")
		}
	}

	elapsed := time.Since(start)

	if err := os.WriteFile(output, result, 0o644); err != nil { //nolint:gosec // G306: matches original tool's output permissions
		log.Fatal().Err(err).Str("path", output).Msg("could not write output file")
	}

	if verbose {
		entry := log.Info().
			Int("input_bytes", len(data)).
			Int("output_bytes", len(result)).
			Str("duration", elapsed.String())
		if mode == "compress" {
			entry = entry.Float64("ratio_percent", cliutil.Ratio(len(data), len(result)))
		}
		entry.Msg(mode + " complete")
	}
}

// Package cli hosts the offline subcommands of the meridian binary.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meridian-trade/meridian/internal/app"
	"github.com/meridian-trade/meridian/internal/pricing"
	"github.com/meridian-trade/meridian/internal/quotes"
)

// CalcOptions defines available flags for the calc command.
type CalcOptions struct {
	InputPath string
	Pretty    bool
	Admin     pricing.AdminSettings
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
}

// CalcCommand parses flags and runs one offline calculation. Admin settings
// come from the same environment variables the server uses.
func CalcCommand(args []string) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	opts := CalcOptions{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	fs.StringVar(&opts.InputPath, "in", "-", "path to the quote request JSON, or - for stdin")
	fs.BoolVar(&opts.Pretty, "pretty", false, "indent the output JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "calc: load config: %v\n", err)
		return 1
	}
	opts.Admin = cfg.AdminSettings()
	return RunCalc(opts)
}

// RunCalc executes the calc workflow and prints the breakdown.
func RunCalc(opts CalcOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	reader := opts.Stdin
	if opts.InputPath != "" && opts.InputPath != "-" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			fmt.Fprintf(opts.Stderr, "calc: %v\n", err)
			return 1
		}
		defer f.Close()
		reader = f
	}

	var req quotes.CalculateRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		fmt.Fprintf(opts.Stderr, "calc: decode request: %v\n", err)
		return 1
	}

	products, defaults := quotes.EngineInputs(req)
	result, err := pricing.Calculate(products, defaults, opts.Admin)
	if err != nil {
		var perr *pricing.PhaseError
		if errors.As(err, &perr) {
			fmt.Fprintf(opts.Stderr, "calc: phase %s", perr.Phase)
			if perr.ProductIndex >= 0 {
				fmt.Fprintf(opts.Stderr, ", product %d", perr.ProductIndex)
			}
			fmt.Fprintf(opts.Stderr, ": %v\n", perr.Err)
			return 1
		}
		fmt.Fprintf(opts.Stderr, "calc: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(opts.Stdout)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(opts.Stderr, "calc: encode result: %v\n", err)
		return 1
	}
	return 0
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatDump   = "dump"
	FormatHex    = "hex"
	FormatBinary = "bin"
)

// Config defines program configuration.
type Config struct {
	Input  string // Archive to read.
	Output string // Path to store output in. Empty means stdout.
	Format string // One of FormatDump, FormatHex or FormatBinary.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	c, err := parseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if c == nil {
		os.Exit(0)
	}
	return c
}

// parseFlags parses args into a Config. It returns nil without error when
// only version information was requested.
func parseFlags(name string, args []string) (*Config, error) {
	var c Config
	c.Format = FormatDump

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "%s [options] <input archive>\n", name)
		flags.PrintDefaults()
	}

	flags.StringVar(&c.Output, "out", c.Output, "Output file. Writes to stdout if empty.")
	flags.StringVar(&c.Format, "format", c.Format, "Output format: dump, hex or bin.")
	version := flags.Bool("version", false, "Display version information.")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		fmt.Println(Version())
		return nil, nil
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return nil, errors.New("missing input archive")
	}

	c.Format = strings.ToLower(c.Format)
	if _, ok := formats[c.Format]; !ok {
		return nil, errors.Errorf("unknown output format %q", c.Format)
	}

	c.Input = flags.Arg(0)
	return &c, nil
}

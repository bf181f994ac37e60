package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hexaflex/avr/asm/ar"
	"github.com/pkg/errors"
)

// formats maps each output format to its writer.
var formats = map[string]func(io.Writer, *ar.Archive) error{
	FormatDump: func(w io.Writer, a *ar.Archive) error {
		_, err := fmt.Fprintln(w, a.String())
		return err
	},
	FormatHex: func(w io.Writer, a *ar.Archive) error {
		return a.WriteHex(w)
	},
	FormatBinary: func(w io.Writer, a *ar.Archive) error {
		return a.WriteBinary(w)
	},
}

func main() {
	if err := run(parseArgs()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the input archive and writes it to the requested output.
// The output file is only created once the input has been read.
func run(c *Config) (err error) {
	write, ok := formats[c.Format]
	if !ok {
		return errors.Errorf("unknown output format %q", c.Format)
	}

	a, err := loadArchive(c.Input)
	if err != nil {
		return err
	}

	w, close, err := makeWriter(c)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(w, a)
}

// loadArchive reads the archive at the given path.
func loadArchive(file string) (*ar.Archive, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	a := ar.New()
	if err := a.Load(fd); err != nil {
		return nil, errors.Wrapf(err, "load %s", file)
	}
	return a, nil
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func() error, error) {
	if c.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			return nil, nil, err
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		return nil, nil, err
	}
	return fd, fd.Close, nil
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/sim6/asm"
)

func main() {
	var output string
	var config string
	var symbols string
	var listing bool
	var verbose bool

	flag.StringVar(&output, "o", "", ".sse file to write, or - for stdout")
	flag.StringVar(&config, "config", "", "Starlark configuration file")
	flag.StringVar(&symbols, "map", "", "YAML symbol map to write")
	flag.BoolVar(&listing, "l", false, "Write a listing to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 || len(output) == 0 {
		atexit.Fatalf("usage: %v [-config file.star] [-map file.yaml] [-l] [-v] -o <output>.sse <input>.asm", os.Args[0])
	}

	input := flag.Arg(0)
	if !strings.HasSuffix(input, ".asm") {
		atexit.Fatalf("%v: input filename must end in .asm", input)
	}
	if output != "-" && !strings.HasSuffix(output, ".sse") {
		atexit.Fatalf("%v: output filename must end in .sse", output)
	}
	if output == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		atexit.Fatalf("%v: refusing to write binary output to a terminal", os.Args[0])
	}

	assembler := &asm.Assembler{Verbose: verbose}

	if len(config) != 0 {
		cfg, err := asm.LoadConfig(config, nil)
		if err != nil {
			atexit.Fatalf("%v: %v", config, err)
		}
		assembler.Config = &cfg
	}

	inf, err := os.Open(input)
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}
	atexit.Register(func() { inf.Close() })

	prog, err := assembler.Parse(inf)
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	bin, err := prog.Bytes()
	if err != nil {
		atexit.Fatalf("%v: %v", input, err)
	}

	if listing {
		err = prog.Listing(os.Stderr)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
	}

	err = writeOutput(output, bin)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	if len(symbols) != 0 {
		var text []byte
		text, err = asm.SymbolMap(prog.Labels)
		if err == nil {
			err = os.WriteFile(symbols, text, 0o644)
		}
		if err != nil {
			atexit.Fatalf("%v: %v", symbols, err)
		}
	}

	if verbose {
		log.Printf("%v: %d bytes, %d labels", output, len(bin), len(prog.Labels))
	}

	atexit.Exit(0)
}

// writeOutput writes the object image. A partially written file is removed
// if the program exits with an error.
func writeOutput(output string, bin []byte) (err error) {
	var ouf io.WriteCloser = os.Stdout
	if output != "-" {
		var file *os.File
		file, err = os.Create(output)
		if err != nil {
			return
		}
		done := false
		atexit.Register(func() {
			if !done {
				os.Remove(output)
			}
		})
		defer func() {
			done = err == nil
		}()
		ouf = file
	}

	_, err = ouf.Write(bin)
	if output != "-" {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}

	return
}

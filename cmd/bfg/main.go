// Copyright 2023, Alexandre Martos <contact@amartos.fr>

// bfg runs BrainFuck programs from files or from an interactive shell.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/amartos/BFG/arena"
	"github.com/amartos/BFG/config"
	"github.com/amartos/BFG/interp"
	"github.com/amartos/BFG/io"
	"github.com/amartos/BFG/machine"
)

// LICENSE is the notice printed by the -w flag.
const LICENSE = "License MIT - Copyright 2023 Alexandre Martos <contact@amartos.fr>"

// fileList collects the repeatable -f flags, in order.
type fileList []string

func (fl *fileList) String() string {
	return strings.Join(*fl, ",")
}

func (fl *fileList) Set(value string) error {
	*fl = append(*fl, value)
	return nil
}

func main() {
	var files fileList
	var compile string
	var expand string
	var persistent bool
	var debug bool
	var strict bool
	var version bool
	var license bool
	var verbose bool

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.FindAndLoad(cwd)
	if err != nil {
		log.Fatalf("%v: %v", config.FILE, err)
	}

	flag.Var(&files, "f", "Program file to run, repeatable")
	flag.StringVar(&compile, "c", "", ".bfg file to expand and run")
	flag.StringVar(&expand, "e", "", ".bfg file to expand and print")
	flag.BoolVar(&persistent, "p", cfg.Modes.Persistent, "Keep memory between program files")
	flag.BoolVar(&debug, "d", cfg.Modes.Debug, "Trace each executed instruction")
	flag.BoolVar(&strict, "s", cfg.Modes.Strict, fmt.Sprintf("Limit memory to %v cells", arena.STRICT_LIMIT))
	flag.BoolVar(&version, "v", false, "Print the version and exit")
	flag.BoolVar(&license, "w", false, "Print the license and exit")
	flag.BoolVar(&verbose, "verbose", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if version {
		fmt.Println(interp.VERSION)
		return
	}
	if license {
		fmt.Println(LICENSE)
		return
	}

	ip := interp.NewInterp()
	defer ip.Close()
	ip.Verbose = verbose
	ip.Strict = strict
	ip.Persistent = persistent
	ip.Trace = debug
	ip.Tape.Input = os.Stdin
	ip.Tape.Output = os.Stdout

	if len(expand) != 0 {
		fmt.Println(expandFile(cfg, ip, expand, verbose))
		return
	}

	if len(files) == 0 && len(compile) == 0 {
		shell(cfg, ip)
		return
	}

	if debug {
		ip.Machine.Tracer = &machine.TraceWriter{Out: os.Stderr}
	}
	ip.Reset()

	// A fault aborts the remaining fragments, but the output produced
	// so far is still flushed.
	var fault error
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		if fault = run(ip, path, string(source), debug); fault != nil {
			break
		}
	}
	if fault == nil && len(compile) != 0 {
		fault = run(ip, compile, expandFile(cfg, ip, compile, verbose), debug)
	}

	if debug {
		fmt.Fprintln(os.Stderr, "Output:")
		ip.Delay.Flush(os.Stdout)
	}
	fmt.Println()

	if fault != nil {
		var failed *machine.ErrRuntime
		if errors.As(fault, &failed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one program fragment, reporting its summary on normal
// termination when tracing.
func run(ip *interp.Interp, name string, source string, debug bool) (err error) {
	prog, err := ip.Load(source)
	if err != nil {
		log.Printf("%v: %v", name, err)
		return
	}

	err = ip.Run(prog)
	if err != nil {
		log.Printf("%v: %v", name, err)
		return
	}

	if debug {
		fmt.Fprintln(os.Stderr, ip.Summary(prog))
	}
	return
}

// expandFile expands an extended source file into plain BrainFuck
// text. The interpreter defines and the configured equates are
// predefined, configuration last so it wins.
func expandFile(cfg *config.Config, ip *interp.Interp, path string, verbose bool) (text string) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	e := &machine.Expander{Verbose: verbose}
	for equ, value := range ip.Defines() {
		e.Predefine(equ, value)
	}
	for equ, value := range cfg.Expand {
		e.Predefine(equ, value)
	}

	text, err = e.Expand(inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	return
}

// shell runs one fragment per input line. The shell always traces and
// always keeps memory between lines; errors end the line, not the
// session.
func shell(cfg *config.Config, ip *interp.Interp) {
	ip.Persistent = true
	ip.Trace = true
	ip.Machine.Tracer = &machine.TraceWriter{Out: os.Stderr}

	in := bufio.NewReader(os.Stdin)
	ip.Machine.SetInput(&io.Line{Prompt: cfg.Shell.Input, In: in, Out: os.Stdout})
	ip.Reset()

	for {
		fmt.Print(cfg.Shell.Prompt)
		line, err := in.ReadString('\n')
		if len(line) == 0 && err != nil {
			break
		}

		prog, err := ip.Load(line)
		if err != nil {
			log.Print(err)
			continue
		}

		if err = ip.Run(prog); err != nil {
			log.Print(err)
		} else {
			fmt.Fprintln(os.Stderr, ip.Summary(prog))
		}

		if ip.Delay.Len() != 0 {
			ip.Delay.Flush(os.Stdout)
			fmt.Println()
		}
	}

	fmt.Println()
}

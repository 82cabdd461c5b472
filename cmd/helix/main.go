// Command helix runs a Helix program against stdin and stdout (or files, if
// given).
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/grimdork/climate"

	"github.com/helix-lang/helix/loader"
	"github.com/helix-lang/helix/vm"
)

type options struct {
	climate.Help
	Budget  int    `short:"b" long:"budget" help:"Maximum instructions to execute (0 = unlimited)."`
	Input   string `short:"i" long:"in" help:"File to use as the input port instead of stdin."`
	Output  string `short:"o" long:"out" help:"File to use as the output sink instead of stdout."`
	Verbose bool   `short:"v" long:"verbose" help:"Log run start/stop and fault diagnostics."`
}

func main() {
	defer glog.Flush()

	opt := &options{}
	args, err := climate.Parse(opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: helix [options] <program>")
		os.Exit(2)
	}

	code, err := run(args[0], opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func run(path string, opt *options) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 1, fmt.Errorf("helix: opening program: %w", err)
	}
	defer f.Close()

	s, err := loader.Load(f)
	if err != nil {
		return 1, fmt.Errorf("helix: loading program: %w", err)
	}

	in, closeIn, err := inputPort(opt.Input)
	if err != nil {
		return 1, err
	}
	defer closeIn()

	out, closeOut, err := outputPort(opt.Output)
	if err != nil {
		return 1, err
	}
	defer closeOut()

	interp := vm.New(s, in, out, opt.Budget)
	interp.Verbose = opt.Verbose

	outcome, err := interp.Run()
	if err != nil {
		return 1, fmt.Errorf("helix: %w", err)
	}
	if opt.Verbose {
		glog.Infof("helix: halted: %s", outcome)
	}
	return 0, nil
}

func inputPort(path string) (vm.InputPort, func(), error) {
	if path == "" {
		return vm.NewReaderInputPort(os.Stdin), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("helix: opening input file: %w", err)
	}
	return vm.NewReaderInputPort(f), func() { f.Close() }, nil
}

func outputPort(path string) (vm.OutputPort, func(), error) {
	if path == "" {
		return vm.NewWriterOutputPort(os.Stdout), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("helix: creating output file: %w", err)
	}
	return vm.NewWriterOutputPort(f), func() { f.Close() }, nil
}

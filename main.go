package main

import (
	"github.com/cpmech/gofem1d/config"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			chk.CallerInfo(4)
		}
	}()

	// read input parameters
	runfilepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	if verbose {
		io.PfWhite("\ngofem1d -- 1D finite element solver for scalar diffusion/convection-diffusion\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"run file path", "runfilepath", runfilepath,
			"show messages", "verbose", verbose,
		))
	}

	run, err := config.Read(runfilepath)
	if err != nil {
		chk.Panic("cannot read run file:\n%v", err)
	}
	run.Verbose = run.Verbose || verbose

	if err := runAll(run); err != nil {
		chk.Panic("run failed:\n%v", err)
	}

	if verbose {
		io.Pf("\nfinished\n")
	}
}

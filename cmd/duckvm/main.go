package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/duckmachine/duckvm/asm"
	"github.com/duckmachine/duckvm/console"
	"github.com/duckmachine/duckvm/emulator"
)

func main() {
	var compile string
	var object string
	var save string
	var start uint
	var monitor bool
	var defines bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".dasm file to assemble")
	flag.StringVar(&object, "l", "", ".dobj object file to load")
	flag.StringVar(&save, "s", "", "save object code to file, do not execute")
	flag.UintVar(&start, "a", emulator.START_ADDR, "start address")
	flag.BoolVar(&monitor, "m", false, "interactive monitor")
	flag.BoolVar(&defines, "D", false, "print machine defines and exit")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := &asm.Program{}

	// Assemble a new program, or load saved object code.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		as := &asm.Assembler{Verbose: verbose}
		prog, err = as.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else if len(object) != 0 {
		inf, err := os.Open(object)
		if err != nil {
			log.Fatalf("%v: %v", object, err)
		}
		defer inf.Close()

		prog, err = asm.LoadObject(inf)
		if err != nil {
			log.Fatalf("%v: %v", object, err)
		}
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		defer ouf.Close()

		err = prog.Save(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	emu := emulator.NewEmulator(os.Stdin, os.Stdout)
	emu.Verbose = verbose
	if err := emu.Load(prog); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	if monitor {
		if err := console.New(emu).Run(); err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		return
	}

	if err := emu.Run(uint32(start)); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

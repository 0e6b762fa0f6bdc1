// Package emulator wires a duck machine CPU to a memory-mapped RAM
// and manages program loading and execution.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/duckmachine/duckvm/asm"
	"github.com/duckmachine/duckvm/cpu"
	"github.com/duckmachine/duckvm/internal"
	"github.com/duckmachine/duckvm/memory"
)

const (
	MEM_SIZE   = 512 // Words of memory, mapped I/O included.
	START_ADDR = 0   // Default execution start address.
)

var _emulator_defines = map[string]string{
	"MEM_SIZE":    fmt.Sprintf("%v", MEM_SIZE),
	"START_ADDR":  fmt.Sprintf("%v", START_ADDR),
	"ADDR_INPUT":  fmt.Sprintf("%v", memory.ADDR_INPUT),
	"ADDR_OUTPUT": fmt.Sprintf("%v", memory.ADDR_OUTPUT),
}

// Emulator state. CPU + mapped memory + the loaded program listing.
type Emulator struct {
	Verbose bool // If set, traces each executed instruction.

	*cpu.CPU
	Memory  *memory.MappedIO
	Program *asm.Program
}

// NewEmulator creates an emulator whose mapped input and output
// addresses are connected to the given streams.
func NewEmulator(input io.Reader, output io.Writer) (emu *Emulator) {
	emu = &Emulator{
		Memory:  memory.NewMappedIO(MEM_SIZE, input, output),
		Program: &asm.Program{},
	}
	emu.CPU = cpu.NewCPU(emu.Memory)

	emu.CPU.AddListener(cpu.ListenerFunc(emu.trace))

	return
}

// trace logs each decoded instruction with its source line, when
// the emulator is verbose.
func (emu *Emulator) trace(ev cpu.Step) {
	if !emu.Verbose {
		return
	}

	source := ""
	if st := emu.Program.Debug(ev.PCAddr); st != nil {
		source = fmt.Sprintf("  ; %v", st.Source)
	}
	log.Printf("emulator: %3d: %v%v", ev.PCAddr, ev.Instr, source)
}

// Defines returns an iterator over all of the machine defines and
// the loaded program's symbols.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Program.Symbols(),
	)
}

// Load resets the machine and places the program image in memory,
// starting at address zero.
func (emu *Emulator) Load(prog *asm.Program) (err error) {
	emu.Program = prog
	emu.CPU.Reset()
	emu.Memory.Clear()

	for addr, word := range prog.Words() {
		err = emu.Memory.RAM.Put(addr, word)
		if err != nil {
			return
		}
	}

	return
}

// Run executes the loaded program from fromAddr until it halts.
func (emu *Emulator) Run(fromAddr uint32) (err error) {
	return emu.CPU.Run(fromAddr)
}

// Step executes one instruction and reports whether the machine
// has halted.
func (emu *Emulator) Step() (done bool, err error) {
	err = emu.CPU.Step()
	done = emu.CPU.Halted
	return
}

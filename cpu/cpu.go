package cpu

import (
	"log"

	"github.com/duckmachine/duckvm/instr"
	"github.com/duckmachine/duckvm/memory"
)

const (
	NUM_REGS = 16 // Register file size.
	PC_REG   = 15 // Register aliased to the program counter.
)

// CPU is the duck machine central processing unit. It holds the
// register file, the current condition flags, the halted latch, and
// an ALU, and sequences execution against the memory connection it
// was constructed with.
type CPU struct {
	Listenable

	Verbose bool // Set to enable verbose logging.

	Registers [NUM_REGS]Register
	PC        Register // Alias of Registers[PC_REG].
	CC        instr.CondFlag
	Halted    bool
	ALU       ALU

	memory memory.Connection
}

// NewCPU creates a CPU attached to a memory connection.
func NewCPU(mem memory.Connection) (cpu *CPU) {
	cpu = &CPU{
		CC:     instr.ALWAYS,
		memory: mem,
	}

	cpu.Registers[0] = &ZeroRegister{}
	for n := 1; n < NUM_REGS; n++ {
		cpu.Registers[n] = &WordRegister{}
	}
	cpu.PC = cpu.Registers[PC_REG]

	return
}

// Reset zeroes the registers and restores the initial flag state.
// The memory connection is untouched.
func (cpu *CPU) Reset() {
	for _, reg := range cpu.Registers {
		reg.Put(0)
	}
	cpu.CC = instr.ALWAYS
	cpu.Halted = false
}

// Step performs one fetch, decode, execute cycle.
func (cpu *CPU) Step() (err error) {
	// Fetch
	instrAddr := cpu.PC.Get()
	instrWord, err := cpu.memory.Get(instrAddr)
	if err != nil {
		return
	}

	// Decode
	in := instr.Decode(instrWord)
	if cpu.Verbose {
		log.Printf("cpu: %3d: %v", instrAddr, in)
	}

	// Publish the decoded instruction before executing it, so
	// listeners see the machine state it will run against.
	cpu.NotifyAll(Step{Subject: cpu, PCAddr: instrAddr, InstrWord: instrWord, Instr: in})

	// Execute
	if cpu.CC&in.Cond == instr.NEVER {
		// The program counter still moves forward, with no other
		// computation.
		cpu.PC.Put(cpu.PC.Get() + 1)
		return
	}

	target := cpu.Registers[in.RegTarget]
	left := cpu.Registers[in.RegSrc1].Get()
	right := cpu.Registers[in.RegSrc2].Get() + uint32(in.Offset)

	// Step the program counter after forming operands but before
	// storing the result, so a store into the PC overwrites the
	// stepped value.
	cpu.PC.Put(cpu.PC.Get() + 1)

	result, cc, err := cpu.ALU.Exec(in.Op, left, right)
	if err != nil {
		return
	}
	cpu.CC = cc

	switch in.Op {
	case instr.LOAD:
		var memval uint32
		memval, err = cpu.memory.Get(result)
		if err != nil {
			return
		}
		target.Put(memval)
	case instr.STORE:
		err = cpu.memory.Put(result, target.Get())
		if err != nil {
			return
		}
	case instr.HALT:
		cpu.Halted = true
	default:
		target.Put(result)
	}

	return
}

// Run executes from fromAddr until a HALT instruction sets the
// halted latch, or a collaborator fails. The CPU may be Run again
// afterwards.
func (cpu *CPU) Run(fromAddr uint32) (err error) {
	cpu.Halted = false
	cpu.PC.Put(fromAddr)

	for !cpu.Halted {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

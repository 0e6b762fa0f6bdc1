package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duckmachine/duckvm/asm"
)

func doRun(t *testing.T, input string, program ...string) (emu *Emulator, output string) {
	assert := assert.New(t)

	in := strings.NewReader(input)
	out := &bytes.Buffer{}
	emu = NewEmulator(in, out)

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.NoError(emu.Load(prog))
	assert.NoError(emu.Run(START_ADDR))

	output = out.String()
	return
}

func TestRunSquare(t *testing.T) {
	assert := assert.New(t)

	_, output := doRun(t, "9\n",
		"# read a number, print its square",
		"       LOAD  r1,r0,r0[ADDR_INPUT]",
		"       MUL   r2,r1,r1",
		"       STORE r2,r0,r0[ADDR_OUTPUT]",
		"       HALT",
	)

	assert.Equal("81\n", output)
}

func TestRunSumLoop(t *testing.T) {
	assert := assert.New(t)

	// Sum the integers 1..n for n read from input.
	_, output := doRun(t, "5\n",
		"       LOAD  r1,r0,r0[ADDR_INPUT]   # n",
		"loop:  ADD   r2,r2,r1               # sum += n",
		"       SUB   r1,r1,r0[1]            # n -= 1",
		"       JUMP/P loop",
		"       STORE r2,r0,r0[ADDR_OUTPUT]",
		"       HALT",
	)

	assert.Equal("15\n", output)
}

func TestRunNegativeOutput(t *testing.T) {
	assert := assert.New(t)

	_, output := doRun(t, "3\n10\n",
		"       LOAD  r1,r0,r0[ADDR_INPUT]",
		"       LOAD  r2,r0,r0[ADDR_INPUT]",
		"       SUB   r3,r1,r2",
		"       STORE r3,r0,r0[ADDR_OUTPUT]",
		"       HALT",
	)

	assert.Equal("-7\n", output)
}

func TestStepListing(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(strings.NewReader(""), &bytes.Buffer{})

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(strings.Join([]string{
		"start: ADD r1,r0,r0[2]",
		"       SUB r1,r1,r0[1]",
		"       HALT",
	}, "\n")))
	assert.NoError(err)
	assert.NoError(emu.Load(prog))

	var done bool
	for !done {
		pc := emu.CPU.PC.Get()
		st := emu.Program.Debug(pc)
		assert.NotNil(st)
		assert.Equal(pc, uint32(st.Addr))

		done, err = emu.Step()
		assert.NoError(err)
	}

	assert.Equal(uint32(1), emu.CPU.Registers[1].Get())
	assert.Equal(uint32(3), emu.CPU.PC.Get())
}

func TestLoadResets(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(strings.NewReader(""), &bytes.Buffer{})

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader("ADD r1,r1,r0[1]\nHALT\n"))
	assert.NoError(err)

	assert.NoError(emu.Load(prog))
	assert.NoError(emu.Run(START_ADDR))
	assert.Equal(uint32(1), emu.CPU.Registers[1].Get())

	// Reloading clears registers and memory before the next run.
	assert.NoError(emu.Load(prog))
	assert.Equal(uint32(0), emu.CPU.Registers[1].Get())
	assert.NoError(emu.Run(START_ADDR))
	assert.Equal(uint32(1), emu.CPU.Registers[1].Get())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(strings.NewReader(""), &bytes.Buffer{})

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader("start: HALT\n"))
	assert.NoError(err)
	assert.NoError(emu.Load(prog))

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal("512", defines["MEM_SIZE"])
	assert.Equal("510", defines["ADDR_INPUT"])
	assert.Equal("0", defines["start"])
}

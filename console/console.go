// Package console implements a terminal monitor for the duck
// machine: register, execution log, and status views with
// single-step and run keybindings. It is a debugging aid; the
// machine is stepped strictly sequentially from the UI loop.
package console

import (
	"fmt"

	"github.com/jroimartin/gocui"

	"github.com/duckmachine/duckvm/cpu"
	"github.com/duckmachine/duckvm/emulator"
)

// Cap on instructions executed by a single 'run' key, so a program
// that never halts does not wedge the UI.
const RUN_LIMIT = 100000

// Console is an interactive single-step monitor around an emulator.
type Console struct {
	Emulator *emulator.Emulator

	trace []string
}

// New creates a console monitoring emu.
func New(emu *emulator.Emulator) (con *Console) {
	con = &Console{Emulator: emu}
	emu.CPU.AddListener(con)
	return
}

// Notify records each decoded instruction for the log view.
func (con *Console) Notify(ev cpu.Step) {
	line := fmt.Sprintf("%3d: %v", ev.PCAddr, ev.Instr)
	if st := con.Emulator.Program.Debug(ev.PCAddr); st != nil {
		line += fmt.Sprintf("   ; %v", st.Source)
	}
	con.trace = append(con.trace, line)
	if len(con.trace) > 256 {
		con.trace = con.trace[1:]
	}
}

// Run opens the terminal UI and blocks until the user quits.
// Keys: s steps one instruction, r runs to the next HALT, q quits.
func (con *Console) Run() (err error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return
	}
	defer g.Close()

	g.SetManagerFunc(con.layout)

	bindings := [](struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}){
		{'s', con.step},
		{'r', con.run},
		{'q', quit},
		{gocui.KeyCtrlC, quit},
	}
	for _, bind := range bindings {
		err = g.SetKeybinding("", bind.key, gocui.ModNone, bind.handler)
		if err != nil {
			return
		}
	}

	err = g.MainLoop()
	if err == gocui.ErrQuit {
		err = nil
	}

	return
}

// gocui layout: execution log on the left, registers on the right,
// status line along the bottom.
func (con *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("log", 0, 0, maxX-28, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Execution"
		v.Autoscroll = true
	}
	if v, err := g.SetView("registers", maxX-27, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	if _, err := g.SetView("status", 0, maxY-3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	con.refresh(g)
	return nil
}

// refresh redraws every view from the current machine state.
func (con *Console) refresh(g *gocui.Gui) {
	cp := con.Emulator.CPU

	if v, err := g.View("registers"); err == nil {
		v.Clear()
		for n, reg := range cp.Registers {
			name := fmt.Sprintf("r%d", n)
			if n == cpu.PC_REG {
				name = "pc"
			}
			fmt.Fprintf(v, "%4s: %08x\n", name, reg.Get())
		}
		fmt.Fprintf(v, "  cc: %v\n", cp.CC)
	}

	if v, err := g.View("log"); err == nil {
		v.Clear()
		for _, line := range con.trace {
			fmt.Fprintln(v, line)
		}
	}

	if v, err := g.View("status"); err == nil {
		v.Clear()
		state := "ready"
		if cp.Halted {
			state = "halted"
		}
		fmt.Fprintf(v, " %v  pc=%d   s: step  r: run  q: quit", state, cp.PC.Get())
	}
}

func (con *Console) step(g *gocui.Gui, v *gocui.View) error {
	if !con.Emulator.CPU.Halted {
		if _, err := con.Emulator.Step(); err != nil {
			con.trace = append(con.trace, fmt.Sprintf("error: %v", err))
		}
	}
	con.refresh(g)
	return nil
}

func (con *Console) run(g *gocui.Gui, v *gocui.View) error {
	for n := 0; n < RUN_LIMIT && !con.Emulator.CPU.Halted; n++ {
		if _, err := con.Emulator.Step(); err != nil {
			con.trace = append(con.trace, fmt.Sprintf("error: %v", err))
			break
		}
	}
	con.refresh(g)
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

package cpu

import (
	"github.com/duckmachine/duckvm/instr"
)

// Step describes one decoded instruction that is about to execute:
// the CPU it belongs to, the address it was fetched from, the raw
// word, and its decoding. Listeners observe the machine state as it
// was before execution, whether or not the predicate passes.
type Step struct {
	Subject   *CPU
	PCAddr    uint32
	InstrWord uint32
	Instr     instr.Instruction
}

// Listener receives Step events.
type Listener interface {
	Notify(ev Step)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Step)

func (fn ListenerFunc) Notify(ev Step) {
	fn(ev)
}

// Listenable broadcasts Step events to registered listeners, in
// registration order.
type Listenable struct {
	listeners []Listener
}

// AddListener registers a listener.
func (lis *Listenable) AddListener(listener Listener) {
	lis.listeners = append(lis.listeners, listener)
}

// RemoveListener removes a previously registered listener. The
// listener must be of a comparable type.
func (lis *Listenable) RemoveListener(listener Listener) {
	for n, l := range lis.listeners {
		if l == listener {
			lis.listeners = append(lis.listeners[:n], lis.listeners[n+1:]...)
			return
		}
	}
}

// NotifyAll delivers ev to every listener.
func (lis *Listenable) NotifyAll(ev Step) {
	for _, l := range lis.listeners {
		l.Notify(ev)
	}
}

package main

import "io"

// Machine wires the devices together: port bus, VGA renderer, input
// queue, keyboard, interrupt controller, file store and shell. It is the
// whole hosted computer; tests build one per case the way they would
// build any other device.
type Machine struct {
	bus   hostBus
	queue inputQueue
	vga   *VGA
	kbd   *Keyboard
	intc  *InterruptController
	fs    FileStore
	shell *Shell
}

// NewMachine builds a machine with the given text grid geometry and
// color attribute. Echo, if non-nil, receives every byte the renderer
// writes; the host frontend points it at stdout.
func NewMachine(width, height int, attr byte, echo io.Writer) *Machine {
	m := &Machine{}
	m.vga = NewVGA(width, height, attr, &m.bus)
	m.vga.echo = echo
	m.kbd = NewKeyboard(&m.bus, &m.queue)
	m.intc = NewInterruptController(&m.bus, &m.queue)
	m.shell = NewShell(m.vga, &m.fs, &m.queue)
	return m
}

// Boot runs the startup sequence: clear the screen, arm keyboard
// interrupts, initialise the file store, print the banner.
func (m *Machine) Boot() {
	m.vga.Clear()
	m.intc.Install(m.kbd.Interrupt)
	m.fs.Init()
	m.vga.Printf("MiniOS v0.3 - terminal + tiny FS\n")
	m.vga.Printf("Type 'help' for commands.\n\n")
}

// InjectKey places a raw scancode on the keyboard data port and raises
// the keyboard interrupt, exactly what the hardware does on a key event.
// Interrupt context: the host frontend calls this from its reader
// goroutine.
func (m *Machine) InjectKey(sc byte) {
	m.bus.scancode = sc
	m.intc.Deliver(keyboardVector)
}

package main

import "sync/atomic"

// 8259A initialisation command words. Vector bases 0x20/0x28 move the
// hardware interrupts clear of the CPU exception range.
const (
	picICW1         = 0x11 // edge-triggered, cascade, ICW4 needed
	picVectorBase1  = 0x20
	picVectorBase2  = 0x28
	picCascadeIRQ2  = 4 // primary: secondary on IRQ2
	picCascadeID    = 2 // secondary: cascade identity
	picMode8086     = 0x01
	keyboardIRQLine = 1
	keyboardVector  = 0x21
)

// IDT gate encoding for the keyboard handler.
const (
	gateSelector = 0x0008 // kernel code segment
	gateFlags    = 0x8E   // present, ring 0, 32-bit interrupt gate
)

type idtEntry struct {
	offsetLow  uint16
	selector   uint16
	zero       byte
	flags      byte
	offsetHigh uint16
}

// bytes returns the descriptor in its in-memory layout, little-endian
// fields in table order.
func (e idtEntry) bytes() [8]byte {
	return [8]byte{
		byte(e.offsetLow), byte(e.offsetLow >> 8),
		byte(e.selector), byte(e.selector >> 8),
		e.zero,
		e.flags,
		byte(e.offsetHigh), byte(e.offsetHigh >> 8),
	}
}

func (e idtEntry) present() bool {
	return e.flags&0x80 != 0
}

type irqState = int32

const (
	irqUninitialized irqState = iota
	irqTableBuilt
	irqControllerRemapped
	irqArmed
)

// InterruptController owns the vector table, the PIC remap protocol and
// the armed flag. Only vector 0x21 ever carries a real handler; handlers
// are Go functions standing in for handler addresses, with a fixed
// placeholder offset so the descriptor bytes are still checkable against
// the hardware layout.
//
// Install runs on the foreground side, Deliver on the interrupt side.
// The state word is the publication point: table and handler writes all
// happen before the armed store, and Deliver reads nothing unless it has
// observed armed. Like the queue indices, this keeps the two contexts
// off each other's state without a lock.
type InterruptController struct {
	ports    PortIO
	queue    *inputQueue
	idt      [256]idtEntry
	handlers [256]func()
	state    atomic.Int32
}

func NewInterruptController(ports PortIO, queue *inputQueue) *InterruptController {
	return &InterruptController{ports: ports, queue: queue}
}

// handlerOffset is the address recorded in the keyboard gate. The real
// transfer of control happens through Deliver, so the value only has to
// be stable and nonzero.
const handlerOffset = 0x00100000

func (ic *InterruptController) buildIDT() {
	for i := range ic.idt {
		ic.idt[i] = idtEntry{}
		ic.handlers[i] = nil
	}
	ic.state.Store(irqTableBuilt)
}

func (ic *InterruptController) setGate(vec byte, handler func()) {
	ic.idt[vec] = idtEntry{
		offsetLow:  uint16(handlerOffset & 0xFFFF),
		selector:   gateSelector,
		zero:       0,
		flags:      gateFlags,
		offsetHigh: uint16(handlerOffset >> 16),
	}
	ic.handlers[vec] = handler
}

// remap reprograms both PICs: save the current masks, run the four-word
// initialisation sequence on each, then restore the masks.
func (ic *InterruptController) remap() {
	a1 := ic.ports.Inb(portPIC1Data)
	a2 := ic.ports.Inb(portPIC2Data)

	ic.ports.Outb(portPIC1Command, picICW1)
	ic.ports.Outb(portPIC2Command, picICW1)
	ic.ports.Outb(portPIC1Data, picVectorBase1)
	ic.ports.Outb(portPIC2Data, picVectorBase2)
	ic.ports.Outb(portPIC1Data, picCascadeIRQ2)
	ic.ports.Outb(portPIC2Data, picCascadeID)
	ic.ports.Outb(portPIC1Data, picMode8086)
	ic.ports.Outb(portPIC2Data, picMode8086)

	ic.ports.Outb(portPIC1Data, a1)
	ic.ports.Outb(portPIC2Data, a2)
	ic.state.Store(irqControllerRemapped)
}

func (ic *InterruptController) unmaskKeyboard() {
	mask := ic.ports.Inb(portPIC1Data)
	mask &^= 1 << keyboardIRQLine
	ic.ports.Outb(portPIC1Data, mask)
}

// Install takes the controller from any state to Armed: reset the input
// queue, build a zeroed vector table, remap the PICs, point vector 0x21
// at the keyboard handler, unmask IRQ1 and enable delivery. Installing
// again re-runs the whole sequence, queue reset included, so a re-arm can
// never leave stale ring indices behind.
func (ic *InterruptController) Install(keyboardHandler func()) {
	ic.queue.Reset()
	ic.buildIDT()
	ic.remap()
	ic.setGate(keyboardVector, keyboardHandler)
	ic.unmaskKeyboard()
	ic.state.Store(irqArmed) // publishes the table built above
}

// Armed reports whether interrupt delivery is enabled.
func (ic *InterruptController) Armed() bool {
	return ic.state.Load() == irqArmed
}

// Deliver routes one hardware interrupt through the vector table, the
// way the trampoline would: nothing happens unless the controller is
// armed and the gate is present. Interrupt context.
func (ic *InterruptController) Deliver(vec byte) {
	if ic.state.Load() != irqArmed {
		return
	}
	if !ic.idt[vec].present() {
		return
	}
	if h := ic.handlers[vec]; h != nil {
		h()
	}
}

// Gate exposes a vector's descriptor for verification.
func (ic *InterruptController) Gate(vec byte) idtEntry {
	return ic.idt[vec]
}

package main

// I/O port assignments. These match the PC/AT layout the kernel targets.
const (
	portPIC1Command = 0x20
	portPIC1Data    = 0x21
	portPIC2Command = 0xA0
	portPIC2Data    = 0xA1

	portKeyboardData = 0x60

	portCRTCIndex = 0x3D4
	portCRTCData  = 0x3D5
)

// PortIO is single-byte access to the machine's I/O port space. Every
// hardware-touching component goes through it, so tests can substitute a
// recording double for the real (emulated) hardware.
type PortIO interface {
	Inb(port uint16) byte
	Outb(port uint16, v byte)
}

// hostBus is the port space of the hosted machine. The keyboard data port
// is backed by the most recent scancode the host frontend injected; the
// PIC data ports hold the interrupt masks; CRTC writes land in the two
// cursor index registers so the hardware cursor position is observable.
type hostBus struct {
	scancode byte

	pic1Mask byte
	pic2Mask byte

	crtcIndex  byte
	cursorLow  byte
	cursorHigh byte
}

func (b *hostBus) Inb(port uint16) byte {
	switch port {
	case portKeyboardData:
		return b.scancode
	case portPIC1Data:
		return b.pic1Mask
	case portPIC2Data:
		return b.pic2Mask
	default:
		return 0
	}
}

func (b *hostBus) Outb(port uint16, v byte) {
	switch port {
	case portPIC1Data:
		b.pic1Mask = v
	case portPIC2Data:
		b.pic2Mask = v
	case portCRTCIndex:
		b.crtcIndex = v
	case portCRTCData:
		switch b.crtcIndex {
		case crtcCursorLow:
			b.cursorLow = v
		case crtcCursorHigh:
			b.cursorHigh = v
		}
	case portPIC1Command, portPIC2Command:
		// command words accepted, no state modelled
	}
}

// cursor returns the hardware cursor offset last programmed through the
// CRTC register pair.
func (b *hostBus) cursor() uint16 {
	return uint16(b.cursorHigh)<<8 | uint16(b.cursorLow)
}

package main

// scancodeMap translates set-1 make-codes to ASCII. The table covers the
// main block only; function keys, modifiers, keypad and extended codes
// stay zero and produce no input. That is a known limitation, kept as-is.
var scancodeMap = [128]byte{
	0, 27, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\b',
	'\t', 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n', 0,
	'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`', 0, '\\', 'z', 'x',
	'c', 'v', 'b', 'n', 'm', ',', '.', '/', 0, '*', 0, ' ',
}

const scancodeRelease = 0x80

// translate decodes one raw scancode. Release codes (high bit set) and
// unmapped keys yield no character.
func translate(sc byte) (byte, bool) {
	if sc&scancodeRelease != 0 {
		return 0, false
	}
	c := scancodeMap[sc&0x7f]
	if c == 0 {
		return 0, false
	}
	return c, true
}

// Keyboard is the IRQ1 device: on each interrupt it reads the raw
// scancode from the data port, decodes it, and deposits the character in
// the input queue. It runs in interrupt context and never touches the
// renderer or the file store.
type Keyboard struct {
	ports PortIO
	queue *inputQueue
}

func NewKeyboard(ports PortIO, queue *inputQueue) *Keyboard {
	return &Keyboard{ports: ports, queue: queue}
}

// Interrupt services one keyboard interrupt.
func (k *Keyboard) Interrupt() {
	sc := k.ports.Inb(portKeyboardData)
	c, ok := translate(sc)
	if !ok {
		return
	}
	k.queue.Push(c)
}

// makeCode maps an ASCII byte back to its set-1 make-code, for the host
// frontend which has characters but must inject scancodes. Inverse of
// scancodeMap; ok is false for characters the table cannot produce.
func makeCode(c byte) (byte, bool) {
	for sc, ch := range scancodeMap {
		if ch != 0 && ch == c {
			return byte(sc), true
		}
	}
	return 0, false
}

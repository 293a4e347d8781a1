package main

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// runHost runs the machine against the real terminal: raw keyboard input
// in, rendered bytes out. This is the stand-in for the hardware side of
// the machine; everything kernel-ward of the port interface is identical
// under test.
func runHost(m *Machine) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}
	raw, err := enableRawMode(os.Stdin.Fd())
	if err != nil {
		return err
	}
	defer raw.restore()

	// boot first: the reader goroutine must start strictly after the
	// interrupt subsystem is armed
	m.Boot()
	go readKeys(m)
	m.shell.Run()
	return nil
}

// readKeys is the interrupt-context side: it turns each host keystroke
// back into a set-1 make-code and raises the keyboard interrupt. Bytes
// with no make-code are dropped, matching the sparse scancode table.
func readKeys(m *Machine) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		c := buf[0]
		switch c {
		case '\r':
			c = '\n'
		case 0x7f: // host DEL for backspace
			c = '\b'
		}
		sc, ok := makeCode(c)
		if !ok {
			continue
		}
		m.InjectKey(sc)
	}
}

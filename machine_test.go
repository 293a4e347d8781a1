package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestBoot(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	m := NewMachine(vgaWidth, vgaHeight, defaultAttr, &out)
	m.Boot()

	is.True(m.intc.Armed())
	is.True(strings.HasSuffix(out.String(),
		"MiniOS v0.3 - terminal + tiny FS\nType 'help' for commands.\n\n"))

	_, ok := m.fs.Contents("welcome")
	is.True(ok)
}

// Keystrokes travel the whole path: injected scancode, interrupt
// delivery, translation, queue, line assembly, command dispatch.
func TestKeystrokeToCommand(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	m := NewMachine(vgaWidth, vgaHeight, defaultAttr, &out)
	m.Boot()

	for _, c := range []byte("version\n") {
		sc, ok := makeCode(c)
		is.True(ok)
		m.InjectKey(sc)
		m.InjectKey(sc | scancodeRelease) // releases must be ignored
	}

	out.Reset()
	line := m.shell.ReadLine()
	is.Equal(line, "version")
	m.shell.Execute(line)
	is.Equal(out.String(), "version\nMiniOS version 0.2\n")
}

func TestInjectBeforeBootIsDropped(t *testing.T) {
	is := is.New(t)
	m := NewMachine(vgaWidth, vgaHeight, defaultAttr, nil)
	m.InjectKey(0x1E) // not armed: no delivery, no queue write
	is.Equal(m.queue.Len(), 0)
}

func TestHardwareCursorTracksOutput(t *testing.T) {
	is := is.New(t)
	m := NewMachine(vgaWidth, vgaHeight, defaultAttr, nil)
	m.vga.Clear()
	m.vga.Puts("mini> ")
	row, col := m.vga.Cursor()
	is.Equal(m.bus.cursor(), uint16(row*vgaWidth+col))
}

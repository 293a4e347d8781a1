package main

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode holds the host tty state saved before switching to raw input,
// so it can be restored on the way out.
type rawMode struct {
	fd    uintptr
	saved unix.Termios
}

// enableRawMode turns off canonical mode and echo on the host terminal.
// ISIG is left on so the host process stays killable.
func enableRawMode(fd uintptr) (*rawMode, error) {
	var saved unix.Termios
	if err := termios.Tcgetattr(fd, &saved); err != nil {
		return nil, err
	}
	raw := saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &raw); err != nil {
		return nil, err
	}
	return &rawMode{fd: fd, saved: saved}, nil
}

func (r *rawMode) restore() error {
	return termios.Tcsetattr(r.fd, termios.TCSANOW, &r.saved)
}

package main

const (
	shellPrompt = "mini> "
	inputBufLen = 128 // line buffer; one byte reserved, 127 usable
	versionLine = "MiniOS version 0.2"
)

// shellCommand is the closed set of commands the interpreter accepts.
type shellCommand int

const (
	cmdHelp shellCommand = iota
	cmdClear
	cmdVersion
	cmdEcho
	cmdLs
	cmdCat
	cmdTouch
	cmdRm
	cmdWrite
	cmdNano
)

var shellCommands = map[string]shellCommand{
	"help":    cmdHelp,
	"clear":   cmdClear,
	"version": cmdVersion,
	"echo":    cmdEcho,
	"ls":      cmdLs,
	"cat":     cmdCat,
	"touch":   cmdTouch,
	"rm":      cmdRm,
	"write":   cmdWrite,
	"nano":    cmdNano,
}

// Shell is the foreground command loop: it assembles lines from the
// input queue, echoing as it goes, and dispatches them against the
// command set.
type Shell struct {
	vga   *VGA
	fs    *FileStore
	queue *inputQueue
}

func NewShell(vga *VGA, fs *FileStore, queue *inputQueue) *Shell {
	return &Shell{vga: vga, fs: fs, queue: queue}
}

// ReadLine assembles one line from the queue, echoing each keystroke.
// Backspace retracts the last pending byte; input beyond the buffer is
// ignored. The newline is echoed but not returned.
func (sh *Shell) ReadLine() string {
	var buf [inputBufLen]byte
	idx := 0
	for {
		c := sh.queue.Pop()
		switch c {
		case '\n', '\r':
			sh.vga.Putc('\n')
			return string(buf[:idx])
		case '\b':
			if idx > 0 {
				idx--
				sh.vga.Putc('\b')
			}
		default:
			if idx < inputBufLen-1 {
				buf[idx] = c
				idx++
				sh.vga.Putc(c)
			}
		}
	}
}

// Run is the main loop: prompt, read, execute, repeat. It never returns.
func (sh *Shell) Run() {
	for {
		sh.vga.Puts(shellPrompt)
		line := sh.ReadLine()
		if line == "" {
			continue
		}
		sh.Execute(line)
	}
}

func skipSpaces(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}

// splitToken returns the first space-delimited token and the rest of the
// line with leading spaces skipped.
func splitToken(s string) (tok, rest string) {
	i := 0
	for i < len(s) && s[i] != ' ' {
		i++
	}
	return s[:i], skipSpaces(s[i:])
}

// Execute parses one newline-stripped line and runs it.
func (sh *Shell) Execute(line string) {
	line = skipSpaces(line)
	if line == "" {
		return
	}
	name, args := splitToken(line)
	cmd, ok := shellCommands[name]
	if !ok {
		sh.vga.Printf("Unknown command: %s\n", line)
		return
	}
	switch cmd {
	case cmdHelp:
		sh.help()
	case cmdClear:
		sh.vga.Clear()
	case cmdVersion:
		sh.vga.Printf("%s\n", versionLine)
	case cmdEcho:
		sh.vga.Printf("%s\n", args)
	case cmdLs:
		sh.vga.Printf("Files:\n")
		sh.fs.List(func(name string, size int) {
			sh.vga.Printf("  %s (%d bytes)\n", name, size)
		})
	case cmdCat:
		sh.cat(args)
	case cmdTouch:
		sh.touch(args)
	case cmdRm:
		sh.rm(args)
	case cmdWrite:
		sh.write(args)
	case cmdNano:
		sh.nano(args)
	}
}

func (sh *Shell) help() {
	sh.vga.Printf("Available commands:\n")
	sh.vga.Printf("  help           - show this message\n")
	sh.vga.Printf("  clear          - clear the screen\n")
	sh.vga.Printf("  echo <text>    - echo text\n")
	sh.vga.Printf("  version        - show kernel version\n")
	sh.vga.Printf("  ls             - list files\n")
	sh.vga.Printf("  cat <file>     - show file contents\n")
	sh.vga.Printf("  write <file> <text> - write text to file (overwrite)\n")
	sh.vga.Printf("  touch <file>   - create empty file\n")
	sh.vga.Printf("  rm <file>      - remove file\n")
	sh.vga.Printf("  nano <file>    - edit/create a file with simple editor\n")
}

func (sh *Shell) cat(args string) {
	if args == "" {
		sh.vga.Printf("Usage: cat <file>\n")
		return
	}
	if _, err := sh.fs.ReadTo(args, sh.vga); err != nil {
		sh.vga.Printf("No such file: %s\n", args)
		return
	}
	sh.vga.Printf("\n")
}

func (sh *Shell) touch(args string) {
	if args == "" {
		sh.vga.Printf("Usage: touch <file>\n")
		return
	}
	if err := sh.fs.Create(args); err != nil {
		sh.vga.Printf("Cannot create file: %s\n", args)
	}
}

func (sh *Shell) rm(args string) {
	if args == "" {
		sh.vga.Printf("Usage: rm <file>\n")
		return
	}
	if err := sh.fs.Remove(args); err != nil {
		sh.vga.Printf("No such file: %s\n", args)
	}
}

func (sh *Shell) write(args string) {
	if args == "" {
		sh.vga.Printf("Usage: write <file> <text>\n")
		return
	}
	name, text := splitToken(args)
	name = truncateName(name)
	if name == "" {
		sh.vga.Printf("Invalid file name\n")
		return
	}
	if text == "" {
		sh.vga.Printf("No text provided\n")
		return
	}
	n, err := sh.fs.Write(name, []byte(text))
	if err != nil {
		sh.vga.Printf("Failed to write file\n")
		return
	}
	sh.vga.Printf("Wrote %d bytes to %s\n", n, name)
}

func (sh *Shell) nano(args string) {
	if args == "" {
		sh.vga.Printf("Usage: nano <file>\n")
		return
	}
	ed := NewEditor(sh, args)
	ed.Run()
}

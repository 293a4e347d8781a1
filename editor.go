package main

const editorPrompt = "edit> "

// Editor is the nano session: an append-only buffer bound to one target
// file, fed from the same line reader as the shell. Lines starting with
// '.' are editor commands; everything else is appended with a trailing
// newline. There is no way to modify or delete lines once entered.
type Editor struct {
	shell  *Shell
	target string
	buf    []byte
}

func NewEditor(sh *Shell, target string) *Editor {
	ed := &Editor{shell: sh, target: target}
	if data, ok := sh.fs.Contents(target); ok {
		if len(data) > maxFileSize {
			data = data[:maxFileSize]
		}
		ed.buf = data
	}
	return ed
}

func (ed *Editor) save() {
	n, err := ed.shell.fs.Write(ed.target, ed.buf)
	if err != nil {
		ed.shell.vga.Printf("Save failed\n")
		return
	}
	ed.shell.vga.Printf("Saved %d bytes\n", n)
}

// appendLine adds one input line plus newline, dropping whatever does
// not fit in the file capacity.
func (ed *Editor) appendLine(line string) {
	for i := 0; i < len(line); i++ {
		if len(ed.buf) >= maxFileSize {
			ed.shell.vga.Printf("Buffer full\n")
			break
		}
		ed.buf = append(ed.buf, line[i])
	}
	if len(ed.buf) < maxFileSize {
		ed.buf = append(ed.buf, '\n')
	} else {
		ed.shell.vga.Printf("Buffer full, no newline\n")
	}
}

// handleLine processes one input line; done reports that the session is
// over.
func (ed *Editor) handleLine(line string) (done bool) {
	if line == "" {
		return false
	}
	if line[0] != '.' {
		ed.appendLine(line)
		return false
	}
	switch line {
	case ".":
		return false
	case ".help":
		ed.shell.vga.Printf("Editor commands:\n")
		ed.shell.vga.Printf("  .help - show this message\n")
		ed.shell.vga.Printf("  .save - save to file\n")
		ed.shell.vga.Printf("  .wq   - write and quit\n")
		ed.shell.vga.Printf("  .quit - quit without saving\n")
	case ".save":
		ed.save()
	case ".wq":
		ed.save()
		return true
	case ".quit":
		ed.shell.vga.Printf("Quit without saving\n")
		return true
	default:
		ed.shell.vga.Printf("Unknown editor command: %s\n", line)
	}
	return false
}

// Run drives a full session: banner, seeded contents, then the prompt
// loop until .wq or .quit.
func (ed *Editor) Run() {
	v := ed.shell.vga
	v.Printf("--- nano: editing %s (max %d bytes) ---\n", ed.target, maxFileSize)
	v.Printf("Commands: .help .save .wq .quit\n")
	if len(ed.buf) > 0 {
		v.Printf("--- current contents ---\n")
		for _, c := range ed.buf {
			v.Putc(c)
		}
		v.Printf("--- end ---\n")
	}
	for {
		v.Puts(editorPrompt)
		line := ed.shell.ReadLine()
		if ed.handleLine(line) {
			break
		}
	}
	v.Printf("Exiting editor\n")
}

package main

import "errors"

const (
	maxFiles    = 16
	maxFileName = 15  // name bytes stored; longer names are truncated
	maxFileSize = 512 // data bytes per slot
)

var (
	errNotFound = errors.New("no such file")
	errExists   = errors.New("file exists")
	errNoSpace  = errors.New("file table full")
)

type fileEntry struct {
	name string
	used bool
	size int
	data [maxFileSize]byte
}

// FileStore is the in-memory filesystem: a fixed table of named byte
// buffers. Slots are claimed first-free and listed in table order.
// Nothing survives a restart.
type FileStore struct {
	files [maxFiles]fileEntry
}

func truncateName(name string) string {
	if len(name) > maxFileName {
		return name[:maxFileName]
	}
	return name
}

// Init empties the table and seeds the welcome file.
func (fs *FileStore) Init() {
	for i := range fs.files {
		fs.files[i].used = false
	}
	fs.Write("welcome", []byte("welcome: This is MiniOS (in-memory FS)\n"))
}

func (fs *FileStore) find(name string) int {
	for i := range fs.files {
		if fs.files[i].used && fs.files[i].name == name {
			return i
		}
	}
	return -1
}

// Create claims the first free slot for name. Fails if the name is taken
// or the table is full. Overlong names are truncated before the
// existence check, so a name and its truncation can never occupy two
// slots.
func (fs *FileStore) Create(name string) error {
	name = truncateName(name)
	if fs.find(name) >= 0 {
		return errExists
	}
	for i := range fs.files {
		if !fs.files[i].used {
			fs.files[i].used = true
			fs.files[i].name = name
			fs.files[i].size = 0
			return nil
		}
	}
	return errNoSpace
}

// Write overwrites name's contents, creating the file first if needed.
// Data beyond the slot capacity is silently dropped; the returned count
// is the bytes actually stored.
func (fs *FileStore) Write(name string, data []byte) (int, error) {
	name = truncateName(name)
	idx := fs.find(name)
	if idx < 0 {
		if err := fs.Create(name); err != nil {
			return 0, err
		}
		idx = fs.find(name)
	}
	n := copy(fs.files[idx].data[:], data)
	fs.files[idx].size = n
	return n, nil
}

// ReadTo streams the file's contents to the renderer and returns the
// byte count.
func (fs *FileStore) ReadTo(name string, v *VGA) (int, error) {
	idx := fs.find(name)
	if idx < 0 {
		return 0, errNotFound
	}
	e := &fs.files[idx]
	for i := 0; i < e.size; i++ {
		v.Putc(e.data[i])
	}
	return e.size, nil
}

// Remove marks the slot free. The data bytes stay in place; size and the
// used flag already make them unreachable, so clearing them buys nothing.
func (fs *FileStore) Remove(name string) error {
	idx := fs.find(name)
	if idx < 0 {
		return errNotFound
	}
	fs.files[idx].used = false
	return nil
}

// List yields (name, size) for every used slot, in table order.
func (fs *FileStore) List(visit func(name string, size int)) {
	for i := range fs.files {
		if fs.files[i].used {
			visit(fs.files[i].name, fs.files[i].size)
		}
	}
}

// Contents returns a copy of the file's bytes, for seeding an editor
// session.
func (fs *FileStore) Contents(name string) ([]byte, bool) {
	idx := fs.find(name)
	if idx < 0 {
		return nil, false
	}
	e := &fs.files[idx]
	out := make([]byte, e.size)
	copy(out, e.data[:e.size])
	return out, true
}

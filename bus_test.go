package main

type portWrite struct {
	port uint16
	v    byte
}

// recordingBus is the hardware stand-in for protocol tests: it records
// every port write in order and serves scripted read values per port.
type recordingBus struct {
	writes []portWrite
	reads  map[uint16][]byte
}

func (b *recordingBus) Inb(port uint16) byte {
	q := b.reads[port]
	if len(q) == 0 {
		return 0
	}
	v := q[0]
	b.reads[port] = q[1:]
	return v
}

func (b *recordingBus) Outb(port uint16, v byte) {
	b.writes = append(b.writes, portWrite{port, v})
}

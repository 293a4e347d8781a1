package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// outputVGA gives fs/shell tests a renderer whose byte stream is
// capturable.
func outputVGA() (*VGA, *bytes.Buffer) {
	var out bytes.Buffer
	v, _ := newTestVGA()
	v.echo = &out
	return v, &out
}

func listNames(fs *FileStore) []string {
	var names []string
	fs.List(func(name string, size int) {
		names = append(names, name)
	})
	return names
}

func TestInitSeedsWelcomeFile(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Init()
	data, ok := fs.Contents("welcome")
	is.True(ok)
	is.Equal(string(data), "welcome: This is MiniOS (in-memory FS)\n")
}

func TestCreateDuplicateFails(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	is.NoErr(fs.Create("a"))
	is.Equal(fs.Create("a"), errExists)
}

func TestWriteCreatesMissingFile(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	n, err := fs.Write("b", []byte("hi"))
	is.NoErr(err)
	is.Equal(n, 2)
	data, ok := fs.Contents("b")
	is.True(ok)
	is.Equal(string(data), "hi")
}

func TestWriteOverwrites(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Write("f", []byte("first version"))
	n, err := fs.Write("f", []byte("second"))
	is.NoErr(err)
	is.Equal(n, 6)
	data, _ := fs.Contents("f")
	is.Equal(string(data), "second")
}

func TestWriteTruncatesSilently(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	big := strings.Repeat("x", maxFileSize+100)
	n, err := fs.Write("big", []byte(big))
	is.NoErr(err)
	is.Equal(n, maxFileSize)
	data, _ := fs.Contents("big")
	is.Equal(len(data), maxFileSize)
}

func TestNameTruncation(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	long := "averyveryverylongfilename"
	n, err := fs.Write(long, []byte("x"))
	is.NoErr(err)
	is.Equal(n, 1)
	_, ok := fs.Contents(long[:maxFileName])
	is.True(ok)
}

// Repeated operations under an overlong name must keep hitting the one
// truncated slot, never claim duplicates.
func TestLongNameHitsSameSlot(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	long := "averyveryverylongfilename"

	fs.Write(long, []byte("one"))
	n, err := fs.Write(long, []byte("two"))
	is.NoErr(err)
	is.Equal(n, 3)
	is.Equal(listNames(&fs), []string{long[:maxFileName]})
	data, _ := fs.Contents(long[:maxFileName])
	is.Equal(string(data), "two")

	is.Equal(fs.Create(long), errExists)
}

func TestRemoveThenFind(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Create("a")
	is.NoErr(fs.Remove("a"))
	is.Equal(fs.Remove("a"), errNotFound)
	_, ok := fs.Contents("a")
	is.True(!ok)
}

func TestRemoveLeavesBytesInert(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Write("a", []byte("secret"))
	idx := fs.find("a")
	is.NoErr(fs.Remove("a"))
	// the slot is only marked free; the bytes stay until reuse
	is.Equal(string(fs.files[idx].data[:6]), "secret")
	is.True(!fs.files[idx].used)
}

func TestListSurvivors(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Create("x")
	fs.Create("y")
	fs.Remove("x")
	is.Equal(listNames(&fs), []string{"y"})
}

func TestListIsSlotOrder(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Create("zzz")
	fs.Create("aaa")
	fs.Remove("zzz")
	fs.Create("mmm") // reuses slot 0, ahead of aaa
	is.Equal(listNames(&fs), []string{"mmm", "aaa"})
}

func TestTableFull(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	for i := 0; i < maxFiles; i++ {
		is.NoErr(fs.Create(string(rune('a' + i))))
	}
	is.Equal(fs.Create("overflow"), errNoSpace)
	_, err := fs.Write("overflow", []byte("x"))
	is.Equal(err, errNoSpace)
}

func TestReadToStreamsToRenderer(t *testing.T) {
	is := is.New(t)
	var fs FileStore
	fs.Write("msg", []byte("hello\nworld"))
	v, out := outputVGA()
	n, err := fs.ReadTo("msg", v)
	is.NoErr(err)
	is.Equal(n, 11)
	is.Equal(out.String(), "hello\nworld")

	_, err = fs.ReadTo("absent", v)
	is.Equal(err, errNotFound)
}

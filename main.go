// minios is a single-task kernel runtime: VGA text console, interrupt
// driven keyboard, in-memory file store, and a line shell, run as a
// hosted machine on the local terminal.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"boot the MiniOS shell"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Width  int   `name:"width" default:"80" help:"text grid width"`
	Height int   `name:"height" default:"25" help:"text grid height"`
	Attr   uint8 `name:"attr" default:"7" help:"VGA color attribute byte"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	m := NewMachine(r.Width, r.Height, r.Attr, os.Stdout)
	return runHost(m)
}

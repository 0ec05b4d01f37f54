package main

import (
	_ "embed"
	"fmt"
	"sln/internal/util"

	"github.com/alecthomas/kong"
	"github.com/miekg/king"
)

//go:embed completions/sln.zsh
var zshCompletion []byte

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	switch cmd.Shell {
	case "zsh":
		assert.Success(g.Out.Write(zshCompletion))
	case "bash", "fish":
		cli := CLI{}
		parser, err := kong.New(&cli,
			kong.Name("sln"),
			kong.Description("Solution tracker: group projects and manage their lifecycle"),
		)
		if err != nil {
			return err
		}
		node := parser.Model.Node

		if cmd.Shell == "bash" {
			b := &king.Bash{}
			b.Completion(node, "sln")
			assert.Success(g.Out.Write(b.Out()))
		} else {
			f := &king.Fish{}
			f.Completion(node, "sln")
			assert.Success(g.Out.Write(f.Out()))
		}
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	return nil
}

package main

import (
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Globals `embed:""`

	Watch Watch `cmd:"" default:"withargs" help:"Watch servers and notify as soon as each one opens (default)."`
	List  List  `cmd:"" help:"Print the names of all servers in the directory."`
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("open-watcher"),
		kong.Description("Watches game servers and notifies the moment each of them opens."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			os.Exit(exitCode(code))
		}),
	)

	if err := kctx.Run(&cli.Globals); err != nil {
		os.Exit(exitCodeFailure)
	}
}

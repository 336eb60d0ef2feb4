package main

import (
	"sunburden/cmd/sunburden-cli/commands"
	"sunburden/lib/cliutil"
)

func main() {
	ctx := cliutil.SignalContext()
	commands.ExecuteContext(ctx)
}

package main

import (
	"errors"
	"fmt"
	"os"

	"storefront"
	"storefront/cmd/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.HandleHelp(os.Args)
		commands.ExitOnError(errors.New("at least 1 arguments expected"))
	}

	switch os.Args[1] {
	case "run":
		commands.HandleRun(os.Args)

	case "bot":
		commands.HandleBot(os.Args)

	case "check":
		commands.HandleCheck(os.Args)

	case "help":
		commands.HandleHelp(os.Args)
		os.Exit(0)

	case "version":
		fmt.Println(storefront.StringVersion()) //nolint
		os.Exit(0)

	default:
		commands.HandleHelp(os.Args)
		commands.ExitOnError(fmt.Errorf("unknown command %q", os.Args[1]))
	}
}

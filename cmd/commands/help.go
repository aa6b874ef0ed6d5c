package commands

import (
	"fmt"

	"storefront"
)

const help = `storefront %s

usage: %s <command> [arguments]

commands:
  run <config_path>   start the REST API
  bot <config_path>   start the Telegram ordering bot
  check <config_path> validate the configuration of both processes
  version             print the version
  help                show this message
`

func HandleHelp(args []string) {
	name := "storefront"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Printf(help, storefront.StringVersion(), name) //nolint
}

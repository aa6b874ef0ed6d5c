package commands

import (
	"errors"
	"fmt"

	"storefront/config"
)

// HandleCheck validates a configuration file for both processes without
// connecting to anything.
func HandleCheck(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	report("api", cfg.CheckAPI())
	report("bot", cfg.CheckBot())
}

func report(process string, err error) {
	if err != nil {
		fmt.Printf("%s: %v\n", process, err) //nolint

		return
	}

	fmt.Printf("%s: ok\n", process) //nolint
}

package commands

import (
	"os"

	"storefront/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("storefront error", "err", err.Error())
	os.Exit(1)
}

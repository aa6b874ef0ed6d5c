package telegram

import (
	"fmt"

	"storefront/pkg/logger"
)

// botLogger routes the telegram library's logs through the global logger.
type botLogger struct{}

func (botLogger) Println(v ...any) {
	logger.Warn(fmt.Sprint(v...))
}

func (botLogger) Printf(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

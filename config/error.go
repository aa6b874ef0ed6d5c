package config

import "fmt"

// Error is returned when the configuration cannot be loaded or is invalid.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config: %s", e.reason)
}

package telegram

type Config struct {
	Token string
	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int `yaml:"poll_timeout_in_seconds"`
	// SendRate caps outbound messages per second across all chats.
	SendRate  float64 `yaml:"send_rate_per_second"`
	SendBurst int     `yaml:"send_burst"`
	// HealthAddress is where the placeholder health listener binds.
	HealthAddress string `yaml:"health_address"`
}

package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
	// MaxLen caps the stream length, trimmed approximately on every publish.
	// Zero keeps every event.
	MaxLen int64 `yaml:"max_len"`
	// ClaimIdle is how long an unacknowledged event stays pending before a
	// consumer reclaims it.
	ClaimIdle int `yaml:"claim_idle_in_ms"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}

package apiclient

type Config struct {
	BaseURL string
	Timeout int64 `yaml:"timeout_in_ms"`
}

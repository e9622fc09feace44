package attempts

type Config struct {
	URI     string
	Prefix  string `yaml:"key_prefix"`
	Timeout int64  `yaml:"timeout_in_ms"`
}

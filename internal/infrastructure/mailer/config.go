package mailer

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string
	Password string
	FromName string `yaml:"from_name"`
	Timeout  int64  `yaml:"timeout_in_ms"`
}

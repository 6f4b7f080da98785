package models

// ConfigError indicates an invalid or incomplete configuration.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string {
	return e.Message
}

type ServerConfig struct {
	Port            int `json:"port"`
	ReadTimeoutSec  int `json:"readTimeoutSec"`
	WriteTimeoutSec int `json:"writeTimeoutSec"`
	IdleTimeoutSec  int `json:"idleTimeoutSec"`
}

// AuthConfig holds the single configured identity. PasswordHash is a
// bcrypt hash and takes precedence over the plaintext Password, which
// exists for local development only.
type AuthConfig struct {
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	PasswordHash   string `json:"passwordHash,omitempty"`
	IdleTimeoutSec int    `json:"idleTimeoutSec"`
}

type StoreConfig struct {
	DataFile string `json:"dataFile"`
}

type TracingConfig struct {
	ServiceName    string  `json:"serviceName"`
	ServiceVersion string  `json:"serviceVersion"`
	Environment    string  `json:"environment"`
	OTLPEndpoint   string  `json:"otlpEndpoint"`
	SampleRate     float64 `json:"sampleRate"`
	Enabled        bool    `json:"enabled"`
	UseStdout      bool    `json:"useStdout"`
}

type Config struct {
	Server   ServerConfig  `json:"server"`
	Auth     AuthConfig    `json:"auth"`
	Store    StoreConfig   `json:"store"`
	Tracing  TracingConfig `json:"tracing"`
	LogLevel string        `json:"logLevel"`
}

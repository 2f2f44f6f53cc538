package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Default values written to a freshly created configuration document.
const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 8080
	DefaultImageRoot = "./images"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all persisted server configuration.
type Config struct {
	Host      string `mapstructure:"host"       json:"host"       validate:"required,hostname|ip"`
	Port      int    `mapstructure:"port"       json:"port"       validate:"required,gte=1,lte=65535"`
	ImageRoot string `mapstructure:"image_root" json:"image_root" validate:"required"`
}

// Default returns the configuration used when no document exists yet.
func Default() *Config {
	return &Config{
		Host:      DefaultHost,
		Port:      DefaultPort,
		ImageRoot: DefaultImageRoot,
	}
}

// Validate checks field values against the struct's validation tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Addr returns the host:port pair the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ApplyOverride returns a copy of cfg with the image root replaced.
// The caller is responsible for persisting the result.
func ApplyOverride(cfg *Config, imageRoot string) *Config {
	out := *cfg
	out.ImageRoot = imageRoot
	return &out
}

package pptxbullet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config - marker settings used when bullets are written
type Config struct {
	BulletChar   string `yaml:"bullet_char"`
	NumberScheme string `yaml:"number_scheme"`
	Debug        bool   `yaml:"debug"`
}

var defaultConfig = DefaultConfig()

// DefaultConfig - "•" bullets, "1." numbering
func DefaultConfig() Config {
	return Config{
		BulletChar:   DefaultBulletChar,
		NumberScheme: DefaultNumberScheme,
	}
}

// Empty fields fall back to defaults
func (cfg Config) withDefaults() Config {
	if cfg.BulletChar == "" {
		cfg.BulletChar = DefaultBulletChar
	}
	if cfg.NumberScheme == "" {
		cfg.NumberScheme = DefaultNumberScheme
	}
	return cfg
}

// ParseConfig decodes yaml config, missing keys keep defaults
func ParseConfig(buf []byte) (Config, error) {
	return parseConfig(buf, "config")
}

func parseConfig(buf []byte, source string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, &ParseError{Source: source, Cause: err}
	}
	return cfg.withDefaults(), nil
}

// LoadConfig reads yaml config file
func LoadConfig(path string) (Config, error) {
	buf, err := os.ReadFile(path) // #nosec G304 - config path given by user
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return parseConfig(buf, path)
}

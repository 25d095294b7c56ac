package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration. The token signing secret is
// deliberately not part of the YAML file; it is read from the JWT_SECRET
// environment variable so it never lands in a checked-in config.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Templates struct {
		Dir string `yaml:"dir"`
	} `yaml:"templates"`
	Static struct {
		Dir string `yaml:"dir"`
	} `yaml:"static"`
	JWTSecret string `yaml:"-"`
}

// LoadConfig reads configuration from the specified YAML file and the
// process environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}
	if config.Templates.Dir == "" {
		config.Templates.Dir = "web/templates"
	}
	if config.Static.Dir == "" {
		config.Static.Dir = "web/static"
	}

	config.JWTSecret = os.Getenv("JWT_SECRET")

	return config, nil
}

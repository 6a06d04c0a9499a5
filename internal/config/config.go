// Package config provides hierarchical configuration loading for TaskTrace.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the TaskTrace service.
type Config struct {
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
	Seed      Seed      `yaml:"seed"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Seed holds the startup sequence configuration: the narration and the
// initial tasks emitted shortly after the service comes up.
type Seed struct {
	Enabled bool          `yaml:"enabled"`
	Delay   time.Duration `yaml:"delay"`
	Tasks   []string      `yaml:"tasks"`
}

// Telemetry holds OpenTelemetry configuration.
type Telemetry struct {
	Enabled bool `yaml:"enabled"`
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:       "8080",
			CORSOrigin: "http://localhost:3000",
		},
		Logging: Logging{
			Level:   "info",
			Service: "tasktrace",
		},
		Seed: Seed{
			Enabled: true,
			Delay:   500 * time.Millisecond,
			Tasks: []string{
				"Refactor Legacy Code",
				"Upload Multiple Files",
			},
		},
		Telemetry: Telemetry{
			Enabled: false,
		},
	}
}

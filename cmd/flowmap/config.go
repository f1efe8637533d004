package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/probekit/jvm-flow/engine"
	"github.com/probekit/jvm-flow/probe"
)

// Config is the YAML configuration file structure.
type Config struct {
	Probes struct {
		Label  *bool `yaml:"label"`
		Branch *bool `yaml:"branch"`
		Exit   *bool `yaml:"exit"`
	} `yaml:"probes"`
	Workers int `yaml:"workers"`
}

// loadConfig reads a YAML configuration file. An empty path yields the
// defaults: all probe categories enabled, one worker.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// EngineOptions converts the configuration into pipeline options. Probe
// categories left unset in the file stay enabled.
func (c Config) EngineOptions() engine.Options {
	opts := engine.Options{Probe: probe.DefaultOptions()}
	if c.Probes.Label != nil {
		opts.Probe.LabelProbes = *c.Probes.Label
	}
	if c.Probes.Branch != nil {
		opts.Probe.BranchProbes = *c.Probes.Branch
	}
	if c.Probes.Exit != nil {
		opts.Probe.ExitProbes = *c.Probes.Exit
	}
	return opts
}

package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ThomasMertes/seed7-sub008/runtime"
)

// Config is the content of a REPL configuration file, e.g.
//
//    trace: Debug
//    init: prelude.sd7
//    no-interface-dispatch: false
//    trace-actions: true
//    max-dynamic-depth: 200
//
type Config struct {
	Trace               string `yaml:"trace"`
	Init                string `yaml:"init"`
	NoInterfaceDispatch bool   `yaml:"no-interface-dispatch"`
	TraceActions        bool   `yaml:"trace-actions"`
	TraceExceptions     bool   `yaml:"trace-exceptions"`
	NoInterruptCheck    bool   `yaml:"no-interrupt-check"`
	MaxDynamicDepth     int    `yaml:"max-dynamic-depth"`
	HeapLimit           int    `yaml:"heap-limit"`
}

// loadConfig reads a configuration file. An empty file name yields an empty
// configuration.
func loadConfig(filename string) (*Config, error) {
	c := &Config{}
	if filename == "" {
		return c, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	return c, nil
}

// Options overrides the global option defaults with settings of the
// configuration file.
func (c *Config) Options(opts runtime.Options) runtime.Options {
	if c.NoInterfaceDispatch {
		opts.InterfaceDispatch = false
	}
	if c.NoInterruptCheck {
		opts.CheckInterrupt = false
	}
	opts.TraceActions = opts.TraceActions || c.TraceActions
	opts.TraceExceptions = opts.TraceExceptions || c.TraceExceptions
	if c.MaxDynamicDepth > 0 {
		opts.MaxDynamicDepth = c.MaxDynamicDepth
	}
	if c.HeapLimit > 0 {
		opts.HeapLimit = c.HeapLimit
	}
	return opts
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultName  = "scenario"
	DefaultOrder = "natural"
)

// Operation names accepted in scenario files.
const (
	OpAdd    = "add"
	OpInsert = "insert"
	OpGet    = "get"
	OpSet    = "set"
	OpRemove = "remove"
	OpClear  = "clear"
	OpSort   = "sort"
)

var knownOps = map[string]bool{
	OpAdd: true, OpInsert: true, OpGet: true, OpSet: true,
	OpRemove: true, OpClear: true, OpSort: true,
}

// Config describes a scenario replayed against a fresh array.
type Config struct {
	Name            string     `yaml:"name"`
	InitialCapacity *int       `yaml:"initial_capacity,omitempty"`
	Values          []int      `yaml:"values"`
	Ops             []OpConfig `yaml:"ops"`
	Order           string     `yaml:"order,omitempty"`
	StopOnError     bool       `yaml:"stop_on_error"`
}

// OpConfig is one step of a scenario. Order is only read by sort.
type OpConfig struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	Value int    `yaml:"value,omitempty"`
	Order string `yaml:"order,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: DefaultName,
	}
}

// Capacity returns the initial capacity and whether one was set.
func (c *Config) Capacity() (int, bool) {
	if c.InitialCapacity == nil {
		return 0, false
	}
	return *c.InitialCapacity, true
}

// Validate checks op names. Index ranges are left to the array itself.
func (c *Config) Validate() error {
	for i, op := range c.Ops {
		if !knownOps[op.Op] {
			return fmt.Errorf("op %d: unknown op %q", i, op.Op)
		}
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// OrderOf returns the sort order of op, falling back to DefaultOrder.
func OrderOf(op OpConfig) string {
	if op.Order == "" {
		return DefaultOrder
	}
	return op.Order
}

// SortOrder returns the order of op, falling back to the scenario's Order
// and then to DefaultOrder.
func (c *Config) SortOrder(op OpConfig) string {
	if op.Order == "" && c.Order != "" {
		return c.Order
	}
	return OrderOf(op)
}

func intPtr(v int) *int { return &v }

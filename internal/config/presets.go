package config

import "sort"

var Presets = map[string]*Config{
	"reference": {
		Name:   "reference",
		Values: []int{2, 6, 3, 7, 9, 11, 45, 87, 9, 4, 1},
	},
	"comparable": {
		Name:            "comparable",
		InitialCapacity: intPtr(2),
		Values:          []int{12, 7, 3},
		Ops:             []OpConfig{{Op: OpSort, Order: "natural"}},
	},
	"reverse": {
		Name:   "reverse",
		Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		Ops:    []OpConfig{{Op: OpSort, Order: "asc"}},
	},
	"duplicates": {
		Name:   "duplicates",
		Values: []int{3, -1, 4, 1, -5, 9, 2, -6, 5, 3, 5},
		Ops: []OpConfig{
			{Op: OpSort, Order: "abs"},
			{Op: OpSort, Order: "desc"},
		},
	},
	"growth": {
		Name:            "growth",
		InitialCapacity: intPtr(1),
		Values:          []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		Ops: []OpConfig{
			{Op: OpInsert, Index: 0, Value: 0},
			{Op: OpRemove, Index: 10},
			{Op: OpClear},
			{Op: OpAdd, Value: 42},
		},
	},
	"errors": {
		Name:   "errors",
		Values: []int{2, 6, 3, 7, 9, 11, 45, 87, 9, 4, 1},
		Ops: []OpConfig{
			{Op: OpRemove, Index: -1},
			{Op: OpRemove, Index: 11},
			{Op: OpInsert, Index: 12, Value: 1},
			{Op: OpGet, Index: 11},
			{Op: OpSet, Index: -1, Value: 1},
			{Op: OpGet, Index: 10},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Values = append([]int(nil), p.Values...)
	cfg.Ops = append([]OpConfig(nil), p.Ops...)
	if p.InitialCapacity != nil {
		cfg.InitialCapacity = intPtr(*p.InitialCapacity)
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

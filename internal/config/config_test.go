package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != DefaultName {
		t.Errorf("expected name %s, got %s", DefaultName, cfg.Name)
	}
	if _, ok := cfg.Capacity(); ok {
		t.Error("default config should not set a capacity")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("comparable")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if c, ok := cfg.Capacity(); !ok || c != 2 {
		t.Errorf("expected capacity 2, got %d (set=%v)", c, ok)
	}
	if len(cfg.Values) != 3 {
		t.Errorf("expected 3 values, got %d", len(cfg.Values))
	}
}

func TestGetPreset_IsCopy(t *testing.T) {
	cfg := GetPreset("reference")
	cfg.Values[0] = 1000
	*GetPreset("growth").InitialCapacity = 99

	if Presets["reference"].Values[0] != 2 {
		t.Error("modifying a preset copy changed the preset")
	}
	if *Presets["growth"].InitialCapacity != 1 {
		t.Error("modifying a preset capacity changed the preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate_UnknownOp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ops = []OpConfig{{Op: OpAdd}, {Op: "shuffle"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	if err := Save(path, GetPreset("growth")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "growth" {
		t.Errorf("expected name growth, got %s", cfg.Name)
	}
	if c, ok := cfg.Capacity(); !ok || c != 1 {
		t.Errorf("expected capacity 1, got %d (set=%v)", c, ok)
	}
	if len(cfg.Ops) != 4 || cfg.Ops[0].Op != OpInsert {
		t.Errorf("unexpected ops: %+v", cfg.Ops)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := `
name: custom
initial_capacity: 0
values: [5, 4]
ops:
  - op: insert
    index: 1
    value: 9
  - op: sort
    order: desc
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c, ok := cfg.Capacity(); !ok || c != 0 {
		t.Errorf("expected explicit capacity 0, got %d (set=%v)", c, ok)
	}
	if OrderOf(cfg.Ops[1]) != "desc" {
		t.Errorf("expected order desc, got %s", OrderOf(cfg.Ops[1]))
	}
	if OrderOf(cfg.Ops[0]) != DefaultOrder {
		t.Errorf("expected default order, got %s", OrderOf(cfg.Ops[0]))
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ops:\n  - op: explode\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestSortOrder(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SortOrder(OpConfig{Op: OpSort}); got != DefaultOrder {
		t.Errorf("expected %s, got %s", DefaultOrder, got)
	}

	cfg.Order = "desc"
	if got := cfg.SortOrder(OpConfig{Op: OpSort}); got != "desc" {
		t.Errorf("expected scenario order desc, got %s", got)
	}
	if got := cfg.SortOrder(OpConfig{Op: OpSort, Order: "abs"}); got != "abs" {
		t.Errorf("expected op order abs, got %s", got)
	}
}

func TestLoad_ScenarioOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := "name: ordered\norder: abs\nvalues: [3, -4]\nops:\n  - op: sort\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Order != "abs" || cfg.SortOrder(cfg.Ops[0]) != "abs" {
		t.Errorf("expected order abs, got %q", cfg.Order)
	}
}

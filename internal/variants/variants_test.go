package variants

import (
	"testing"

	"github.com/vovakirdan/whack-arcade/internal/registry"
)

func TestBundledVariantsRegistered(t *testing.T) {
	list := registry.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d variants, expected 2", len(list))
	}
	if list[0].ID != "classic" || list[1].ID != "villain" {
		t.Errorf("List() = %+v, expected classic then villain", list)
	}
	if !registry.Exists("villain") || registry.Exists("breakout") {
		t.Error("Exists() mismatch")
	}
	if _, err := registry.Create("nope"); err == nil {
		t.Error("Create() of an unknown variant should fail")
	}
}

func TestVariantConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		id        string
		occupants int
		first     string
	}{
		{"classic", 2, "plain"},
		{"villain", 3, "loki"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
			cfg, err := v.Config("")
			if err != nil {
				t.Fatalf("Config() failed: %v", err)
			}
			if len(cfg.Occupants) != tt.occupants || cfg.Occupants[0].ID != tt.first {
				t.Errorf("occupants = %+v", cfg.Occupants)
			}
		})
	}
}

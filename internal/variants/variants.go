// Package variants registers the bundled game variants. Import it for its
// side effects.
package variants

import (
	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/registry"
)

// Variant is a registry entry backed by a YAML configuration.
type Variant struct {
	id          string
	title       string
	description string
}

func init() {
	registry.Register("classic", func() registry.Variant {
		return &Variant{
			id:          "classic",
			title:       "Whack-a-Mole",
			description: "Moles and the odd golden mole. Chain hits for combo points.",
		}
	})
	registry.Register("villain", func() registry.Variant {
		return &Variant{
			id:          "villain",
			title:       "Whack-a-Villain",
			description: "Loki, Mangog and a rare Thanos. Bigger villains, bigger points.",
		}
	})
}

// ID returns the variant identifier.
func (v *Variant) ID() string { return v.id }

// Title returns the display name.
func (v *Variant) Title() string { return v.title }

// Description returns the menu blurb.
func (v *Variant) Description() string { return v.description }

// Config loads the variant's configuration.
func (v *Variant) Config(customPath string) (config.WhackConfig, error) {
	return config.Load(v.id, customPath)
}

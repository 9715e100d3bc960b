package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shootbox/component"
)

// WeaponStats is the per-kind side table entry. The simulation is
// polymorphic over the catalog: it never special-cases a kind
type WeaponStats struct {
	Name         string        `yaml:"name"`
	Damage       float64       `yaml:"damage"`
	FireInterval time.Duration `yaml:"fireInterval"`
	StartAmmo    int           `yaml:"startAmmo"`
	MaxAmmo      int           `yaml:"maxAmmo"`
	BulletSpeed  float64       `yaml:"bulletSpeed"` // World units per frame
	Color        string        `yaml:"color"`       // Display color name
}

// Catalog maps weapon kinds to their stats
type Catalog struct {
	stats [component.WeaponTypeCount]WeaponStats
}

// DefaultCatalog returns the compiled-in weapon table
func DefaultCatalog() *Catalog {
	c := &Catalog{}
	c.stats[component.WeaponPistol] = WeaponStats{
		Name: "Pistol", Damage: 25, FireInterval: 300 * time.Millisecond,
		StartAmmo: 12, MaxAmmo: 12, BulletSpeed: 1.2, Color: "cyan",
	}
	c.stats[component.WeaponRifle] = WeaponStats{
		Name: "Rifle", Damage: 34, FireInterval: 120 * time.Millisecond,
		StartAmmo: 30, MaxAmmo: 30, BulletSpeed: 1.5, Color: "red",
	}
	c.stats[component.WeaponShotgun] = WeaponStats{
		Name: "Shotgun", Damage: 60, FireInterval: 900 * time.Millisecond,
		StartAmmo: 8, MaxAmmo: 8, BulletSpeed: 1.0, Color: "yellow",
	}
	c.stats[component.WeaponSMG] = WeaponStats{
		Name: "SMG", Damage: 18, FireInterval: 80 * time.Millisecond,
		StartAmmo: 40, MaxAmmo: 40, BulletSpeed: 1.3, Color: "green",
	}
	return c
}

// Stats returns the table entry for a kind
func (c *Catalog) Stats(kind component.WeaponType) WeaponStats {
	return c.stats[kind]
}

// ParseWeaponType resolves a yaml kind key to the closed enum.
// Unknown names are a catalog contract violation, rejected at load
func ParseWeaponType(name string) (component.WeaponType, error) {
	for kind := component.WeaponType(0); kind < component.WeaponTypeCount; kind++ {
		if kind.String() == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon kind %q", name)
}

// LoadCatalog overlays yaml weapon entries onto the default table.
// Entries are keyed by kind name; partial overrides keep defaults for
// the fields a document omits
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Weapons map[string]WeaponStats `yaml:"weapons"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon catalog: %w", err)
	}

	c := DefaultCatalog()
	for name, stats := range doc.Weapons {
		kind, err := ParseWeaponType(name)
		if err != nil {
			return nil, err
		}
		merged := c.stats[kind]
		if stats.Name != "" {
			merged.Name = stats.Name
		}
		if stats.Damage != 0 {
			merged.Damage = stats.Damage
		}
		if stats.FireInterval != 0 {
			merged.FireInterval = stats.FireInterval
		}
		if stats.StartAmmo != 0 {
			merged.StartAmmo = stats.StartAmmo
		}
		if stats.MaxAmmo != 0 {
			merged.MaxAmmo = stats.MaxAmmo
		}
		if stats.BulletSpeed != 0 {
			merged.BulletSpeed = stats.BulletSpeed
		}
		if stats.Color != "" {
			merged.Color = stats.Color
		}
		if err := validateStats(merged); err != nil {
			return nil, fmt.Errorf("weapon %q: %w", name, err)
		}
		c.stats[kind] = merged
	}
	return c, nil
}

func validateStats(s WeaponStats) error {
	if s.Damage <= 0 {
		return fmt.Errorf("damage must be positive, got %v", s.Damage)
	}
	if s.FireInterval <= 0 {
		return fmt.Errorf("fire interval must be positive, got %v", s.FireInterval)
	}
	if s.MaxAmmo <= 0 || s.StartAmmo < 0 || s.StartAmmo > s.MaxAmmo {
		return fmt.Errorf("invalid ammo range %d/%d", s.StartAmmo, s.MaxAmmo)
	}
	if s.BulletSpeed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %v", s.BulletSpeed)
	}
	return nil
}

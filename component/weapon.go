package component

// WeaponType identifies a carryable weapon kind
// Stats live in the config catalog, keyed by this enum; adding a kind
// requires no change to inventory or projectile logic
type WeaponType uint8

const (
	WeaponPistol WeaponType = iota
	WeaponRifle
	WeaponShotgun
	WeaponSMG
	WeaponTypeCount // Sentinel for array sizing
)

func (w WeaponType) String() string {
	switch w {
	case WeaponPistol:
		return "pistol"
	case WeaponRifle:
		return "rifle"
	case WeaponShotgun:
		return "shotgun"
	case WeaponSMG:
		return "smg"
	}
	return "unknown"
}

// Weapon is a carried weapon instance. Value type, never shared:
// owned by the agent's slot, a dropped-weapon entity, or nothing
type Weapon struct {
	Kind WeaponType
	Ammo int
}

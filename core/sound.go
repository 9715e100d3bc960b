package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire    SoundType = iota // Weapon discharge
	SoundDryFire                  // Rejected shot (empty/cooldown)
	SoundBounce                   // Grenade ground bounce
	SoundBlast                    // Grenade detonation
	SoundHit                      // Bullet on prop
	SoundPickup                   // Weapon collected
	SoundDrop                     // Weapon ejected
	SoundTypeCount
)

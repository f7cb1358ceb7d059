package domain

// Stat keys shared by items and players
const (
	StatAttack          = "Attack"
	StatDefense         = "Defense"
	StatHealth          = "Health"
	StatMana            = "Mana"
	StatLevel           = "Level"
	StatFireDamage      = "FireDamage"
	StatIceDamage       = "IceDamage"
	StatLightningDamage = "LightningDamage"
)

// Player limits
const (
	MinPlayerLevel = 1
	MaxPlayerLevel = 30

	// DefaultInventoryCapacity is the number of backpack slots a new player gets
	DefaultInventoryCapacity = 6
)

// Base player stats before level or equipment are applied
const (
	BasePlayerAttack  = 0
	BasePlayerDefense = 0
	BasePlayerHealth  = 100
	BasePlayerMana    = 50
)

// MinimumLevelRequirement is the level every catalog item currently requires
const MinimumLevelRequirement = 1

package item

import "github.com/shopspring/decimal"

// ==================== Pricing ====================

// Per-point upgrade prices for boost modifiers
const (
	AttackPricePerPoint  = 10
	DefensePricePerPoint = 15
	HealthPricePerPoint  = 2
)

// ElementalStatBonus is the flat damage each elemental layer adds
const ElementalStatBonus = 20

// ElementalPriceMultiplier is applied to the inner item's composed price
var ElementalPriceMultiplier = decimal.NewFromFloat(1.5)

// ==================== Default Names ====================

const (
	DefaultBuilderName = "Unknown Item"
)

// ==================== Descriptions ====================

const (
	DescWeapon     = "A weapon that increases attack power"
	DescArmor      = "Armor that increases defense"
	DescPotion     = "A consumable potion that restores health"
	DescConsumable = "A consumable that restores mana"
	DescAccessory  = "A mystical trinket that increases mana"
)

// ==================== Modifier Text ====================

const (
	NameBoostSuffixFmt     = "%s (+%s +%d)"
	NameElementSuffixFmt   = "%s [%s]"
	DescBoostSuffixFmt     = "%s\n[UPGRADE] +%d %s bonus added"
	DescElementalSuffixFmt = "%s\n[ENCHANTMENT] Infused with %s damage!"
)

// ==================== Formatting ====================

const (
	ItemLineFmt = "[%s] %s - Price: %s gold - Stats: {%s}"
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyKindFmt        = "%w: item kind cannot be empty"
	ErrMsgInvalidKindFmt      = "%w: %q (valid kinds: WEAPON, ARMOR, POTION, CONSUMABLE, ACCESSORY, TRINKET)"
	ErrMsgCustomKindFmt       = "%w: %q items are created with the Builder"
	ErrMsgNegativePriceFmt    = "%w: %s"
	ErrMsgInvalidElementFmt   = "%w: %q (valid elements: Fire, Ice, Lightning)"
	ErrMsgInvalidModifierFmt  = "%w: %q"
	ErrMsgInvalidBonusFmt     = "%w: modifier bonus must be positive, got %d"
	ErrMsgNilInner            = "%w: modifier needs an item to wrap"
	ErrMsgEmptyUpgradePlan    = "%w: no upgrades selected"
	ErrMsgInvalidUpgradeFmt   = "%w: unknown upgrade %q"
	LogMsgInvalidRarityWarn   = "Invalid rarity, using COMMON"
	LogMsgEmptyNameIgnored    = "Empty item name ignored"
	LogMsgEmptyStatKeyIgnored = "Empty stat name ignored"
)

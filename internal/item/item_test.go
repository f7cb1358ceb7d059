package item

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/shopkeep/internal/domain"
)

func gold(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func createTestWeapon() *Base {
	return NewWeapon("Test Sword", gold(100), 10)
}

// =============================================================================
// Base kinds
// =============================================================================

func TestBaseKinds_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		item        *Base
		kind        Kind
		rarity      domain.Rarity
		stats       map[string]int
		description string
	}{
		{
			name:        "weapon",
			item:        NewWeapon("Longsword", gold(500), 25),
			kind:        KindWeapon,
			rarity:      domain.RarityCommon,
			stats:       map[string]int{domain.StatAttack: 25, domain.StatDefense: 0, domain.StatHealth: 0},
			description: DescWeapon,
		},
		{
			name:        "armor",
			item:        NewArmor("Iron Armor", gold(800), 20),
			kind:        KindArmor,
			rarity:      domain.RarityUncommon,
			stats:       map[string]int{domain.StatDefense: 20, domain.StatAttack: 0, domain.StatHealth: 0},
			description: DescArmor,
		},
		{
			name:        "potion",
			item:        NewPotion("Health Potion", gold(50), 100),
			kind:        KindPotion,
			rarity:      domain.RarityCommon,
			stats:       map[string]int{domain.StatHealth: 100, domain.StatAttack: 0, domain.StatDefense: 0},
			description: DescPotion,
		},
		{
			name:        "consumable",
			item:        NewConsumable("Mana Draught", gold(80), 40),
			kind:        KindConsumable,
			rarity:      domain.RarityCommon,
			stats:       map[string]int{domain.StatMana: 40, domain.StatAttack: 0, domain.StatDefense: 0},
			description: DescConsumable,
		},
		{
			name:        "accessory",
			item:        NewAccessory("Emerald Ring", gold(1500), 50),
			kind:        KindAccessory,
			rarity:      domain.RarityRare,
			stats:       map[string]int{domain.StatMana: 50, domain.StatAttack: 0, domain.StatDefense: 0},
			description: DescAccessory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.item.Kind())
			assert.Equal(t, tt.rarity, tt.item.Rarity())
			assert.Equal(t, tt.stats, tt.item.Stats())
			assert.Equal(t, tt.description, tt.item.Description())
		})
	}
}

func TestBase_StatsReturnsCopy(t *testing.T) {
	// ARRANGE
	sword := createTestWeapon()

	// ACT
	stats := sword.Stats()
	stats[domain.StatAttack] = 9999

	// ASSERT
	assert.Equal(t, 10, sword.Stats()[domain.StatAttack], "Mutating the returned map must not change the item")
}

// =============================================================================
// Modifier stack
// =============================================================================

func TestModifiers_AttackThenDefense(t *testing.T) {
	// ARRANGE
	sword := createTestWeapon()

	// ACT
	upgraded := WithDefenseBoost(WithAttackBoost(sword, 15), 20)

	// ASSERT
	assert.True(t, gold(550).Equal(upgraded.Price()), "100 + 15*10 + 20*15, got %s", upgraded.Price())
	stats := upgraded.Stats()
	assert.Equal(t, 25, stats[domain.StatAttack])
	assert.Equal(t, 20, stats[domain.StatDefense])
	assert.Equal(t, "Test Sword (+ATK +15) (+DEF +20)", upgraded.Name())
	assert.Equal(t, domain.RarityCommon, upgraded.Rarity())
}

func TestModifiers_OrderDoesNotChangeTotals(t *testing.T) {
	// ARRANGE
	first := WithDefenseBoost(WithAttackBoost(createTestWeapon(), 15), 20)
	second := WithAttackBoost(WithDefenseBoost(createTestWeapon(), 20), 15)

	// ASSERT
	assert.True(t, first.Price().Equal(second.Price()))
	assert.Equal(t, first.Stats(), second.Stats())
	assert.NotEqual(t, first.Name(), second.Name(), "Name suffixes follow wrap order")
}

func TestModifiers_InnerItemUnchanged(t *testing.T) {
	// ARRANGE
	sword := createTestWeapon()

	// ACT
	_ = WithHealthBoost(WithAttackBoost(sword, 15), 50).Stats()

	// ASSERT
	assert.True(t, gold(100).Equal(sword.Price()))
	assert.Equal(t, 10, sword.Stats()[domain.StatAttack])
	assert.Equal(t, 0, sword.Stats()[domain.StatHealth])
	assert.Equal(t, "Test Sword", sword.Name())
}

func TestModifiers_SameKindStacks(t *testing.T) {
	upgraded := WithAttackBoost(WithAttackBoost(createTestWeapon(), 5), 5)

	assert.Equal(t, 20, upgraded.Stats()[domain.StatAttack])
	assert.True(t, gold(200).Equal(upgraded.Price()))
}

func TestModifiers_HealthBoost(t *testing.T) {
	potion := NewPotion("Health Potion", gold(50), 100)

	upgraded := WithHealthBoost(potion, 50)

	assert.Equal(t, 150, upgraded.Stats()[domain.StatHealth])
	assert.True(t, gold(150).Equal(upgraded.Price()))
	assert.Equal(t, "Health Potion (+HP +50)", upgraded.Name())
	assert.Equal(t, DescPotion+"\n[UPGRADE] +50 Health bonus added", upgraded.Description())
}

func TestModifiers_ElementalIsLayered(t *testing.T) {
	// ARRANGE
	boosted := WithAttackBoost(createTestWeapon(), 15)

	// ACT
	enchanted := WithElement(boosted, ElementFire)

	// ASSERT
	assert.True(t, gold(375).Equal(enchanted.Price()), "1.5 x 250, got %s", enchanted.Price())
	assert.Equal(t, 20, enchanted.Stats()[domain.StatFireDamage])
	assert.Equal(t, 25, enchanted.Stats()[domain.StatAttack])
	assert.Equal(t, "Test Sword (+ATK +15) [FIRE]", enchanted.Name())
	assert.Contains(t, enchanted.Description(), "[ENCHANTMENT] Infused with Fire damage!")
}

func TestModifiers_TwoElementsStack(t *testing.T) {
	enchanted := WithElement(WithElement(createTestWeapon(), ElementIce), ElementIce)

	assert.Equal(t, 40, enchanted.Stats()[domain.StatIceDamage])
	assert.True(t, gold(225).Equal(enchanted.Price()))
}

func TestUnwrapAndLayers(t *testing.T) {
	// ARRANGE
	sword := createTestWeapon()
	stack := WithElement(WithDefenseBoost(WithAttackBoost(sword, 15), 20), ElementLightning)

	// ACT
	base := Unwrap(stack)
	layers := Layers(stack)

	// ASSERT
	assert.Same(t, sword, base)
	require.Len(t, layers, 3)
	assert.Equal(t, ModElemental, layers[0].Kind)
	assert.Equal(t, ModDefenseBoost, layers[1].Kind)
	assert.Equal(t, ModAttackBoost, layers[2].Kind)
	assert.Empty(t, Layers(sword))
	assert.Same(t, sword, Unwrap(sword))
}

func TestModifierApply_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mod     Modifier
		inner   Item
		wantErr error
	}{
		{"nil inner", Modifier{Kind: ModAttackBoost, Bonus: 5}, nil, domain.ErrNilItem},
		{"zero bonus", Modifier{Kind: ModDefenseBoost}, createTestWeapon(), domain.ErrInvalidInput},
		{"unknown element", Modifier{Kind: ModElemental, Element: "Poison"}, createTestWeapon(), domain.ErrUnknownElement},
		{"unknown kind", Modifier{Kind: "speed", Bonus: 3}, createTestWeapon(), domain.ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped, err := tt.mod.Apply(tt.inner)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, wrapped)
		})
	}
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		input   string
		want    Modifier
		wantErr error
	}{
		{input: "attack:15", want: Modifier{Kind: ModAttackBoost, Bonus: 15}},
		{input: " Defense : 20 ", want: Modifier{Kind: ModDefenseBoost, Bonus: 20}},
		{input: "health:50", want: Modifier{Kind: ModHealthBoost, Bonus: 50}},
		{input: "elemental:FIRE", want: Modifier{Kind: ModElemental, Element: ElementFire}},
		{input: "elemental:lightning", want: Modifier{Kind: ModElemental, Element: ElementLightning}},
		{input: "elemental:poison", wantErr: domain.ErrUnknownElement},
		{input: "attack:-3", wantErr: domain.ErrInvalidInput},
		{input: "attack:lots", wantErr: domain.ErrUnknownModifier},
		{input: "speed:2", wantErr: domain.ErrUnknownModifier},
		{input: "attack", wantErr: domain.ErrUnknownModifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseModifier(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModifierString_RoundTrips(t *testing.T) {
	for _, spec := range []string{"attack:15", "defense:20", "health:50", "elemental:ice"} {
		mod, err := ParseModifier(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, mod.String())
	}
}

// =============================================================================
// Factory & builder
// =============================================================================

func TestNew_Kinds(t *testing.T) {
	tests := []struct {
		key    string
		want   Kind
		rarity domain.Rarity
	}{
		{"weapon", KindWeapon, domain.RarityCommon},
		{"ARMOR", KindArmor, domain.RarityUncommon},
		{"Potion", KindPotion, domain.RarityCommon},
		{"consumable", KindConsumable, domain.RarityCommon},
		{"accessory", KindAccessory, domain.RarityRare},
		{"trinket", KindAccessory, domain.RarityRare},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			it, err := New(tt.key, "Thing", gold(10), 5)

			require.NoError(t, err)
			base, ok := it.(*Base)
			require.True(t, ok)
			assert.Equal(t, tt.want, base.Kind())
			assert.Equal(t, tt.rarity, base.Rarity())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		price   decimal.Decimal
		wantErr error
	}{
		{"empty kind", "", gold(10), domain.ErrUnknownItemKind},
		{"unknown kind", "SHIELD", gold(10), domain.ErrUnknownItemKind},
		{"custom kind", "custom", gold(10), domain.ErrUnknownItemKind},
		{"negative price", "weapon", gold(-1), domain.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := New(tt.kind, "Thing", tt.price, 1)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, it)
		})
	}
}

func TestBuilder_Defaults(t *testing.T) {
	it := NewBuilder().Build()

	assert.Equal(t, DefaultBuilderName, it.Name())
	assert.True(t, it.Price().IsZero())
	assert.Equal(t, domain.RarityCommon, it.Rarity())
	assert.Empty(t, it.Stats())
	assert.Empty(t, it.Effects())
	assert.Equal(t, KindCustom, it.Kind())
}

func TestBuilder_InfinityStone(t *testing.T) {
	// ARRANGE
	b := NewBuilder().
		Name("Infinity Stone").
		Price(gold(99999)).
		Rarity("legendary").
		Stat(domain.StatAttack, 150).
		Stat("Critical Chance", 100).
		Stat("Attack Speed", 50).
		Description("A stone of unimaginable power").
		Effect("Time Manipulation")

	// ACT
	stone := b.Build()
	b.Stat(domain.StatAttack, 1).Effect("Reality Warp")

	// ASSERT
	assert.Equal(t, "Infinity Stone", stone.Name())
	assert.Equal(t, domain.RarityLegendary, stone.Rarity())
	assert.Equal(t, 150, stone.Stats()[domain.StatAttack], "Building again must not leak into earlier items")
	assert.Equal(t, []string{"Time Manipulation"}, stone.Effects())
}

func TestBuilder_InvalidInputsFallBack(t *testing.T) {
	it := NewBuilder().
		Name("   ").
		Price(gold(-50)).
		Rarity("MYTHIC").
		Stat("", 3).
		Build()

	assert.Equal(t, DefaultBuilderName, it.Name())
	assert.True(t, it.Price().IsZero(), "Negative price clamps to zero")
	assert.Equal(t, domain.RarityCommon, it.Rarity())
	assert.Empty(t, it.Stats())
}

// =============================================================================
// Upgrade plan
// =============================================================================

func TestUpgradePlan_AppliesInFixedOrder(t *testing.T) {
	// ARRANGE
	plan, err := NewUpgradePlan("health", "attack", "defense")
	require.NoError(t, err)

	// ACT
	upgraded, err := plan.Apply(createTestWeapon())

	// ASSERT
	require.NoError(t, err)
	assert.True(t, gold(900).Equal(plan.Cost()))
	layers := Layers(upgraded)
	require.Len(t, layers, 3)
	assert.Equal(t, ModHealthBoost, layers[0].Kind, "health is applied last")
	assert.Equal(t, ModAttackBoost, layers[2].Kind, "attack is applied first")
	assert.Equal(t, 25, upgraded.Stats()[domain.StatAttack])
	assert.Equal(t, 20, upgraded.Stats()[domain.StatDefense])
	assert.Equal(t, 50, upgraded.Stats()[domain.StatHealth])
}

func TestUpgradePlan_Errors(t *testing.T) {
	_, err := NewUpgradePlan("speed")
	assert.ErrorIs(t, err, domain.ErrUnknownModifier)

	empty, err := NewUpgradePlan()
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	_, err = empty.Apply(createTestWeapon())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpgradePlan_DuplicateKeysCollapse(t *testing.T) {
	plan, err := NewUpgradePlan("attack", "ATTACK")

	require.NoError(t, err)
	assert.Len(t, plan.Upgrades(), 1)
	assert.True(t, gold(300).Equal(plan.Cost()))
}

// =============================================================================
// Formatting
// =============================================================================

func TestString(t *testing.T) {
	sword := createTestWeapon()

	assert.Equal(t, "[COMMON] Test Sword - Price: 100 gold - Stats: {Attack:10, Defense:0, Health:0}", String(sword))
	assert.Equal(t, String(sword), sword.String())
	assert.Empty(t, String(nil))
}

func TestString_Modified(t *testing.T) {
	enchanted := WithElement(createTestWeapon(), ElementFire)

	assert.Equal(t,
		"[COMMON] Test Sword [FIRE] - Price: 150 gold - Stats: {Attack:10, Defense:0, FireDamage:20, Health:0}",
		enchanted.String())
}

package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/shopkeep/internal/catalog"
	"github.com/osse101/shopkeep/internal/event"
	"github.com/osse101/shopkeep/internal/inventory"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/player"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder captures every notification as a short tag
type recorder struct {
	events []string
}

func (r *recorder) OnGoldChanged(context.Context, *player.Player) {
	r.events = append(r.events, "gold")
}

func (r *recorder) OnInventoryChanged(context.Context, *player.Player) {
	r.events = append(r.events, "inventory")
}

func (r *recorder) OnCatalogChanged(context.Context, *catalog.Catalog) {
	r.events = append(r.events, "catalog")
}

func (r *recorder) OnItemEquipped(_ context.Context, it item.Item, _ *player.Player) {
	r.events = append(r.events, "equipped:"+it.Name())
}

func (r *recorder) OnItemUnequipped(_ context.Context, it item.Item, _ *player.Player) {
	r.events = append(r.events, "unequipped:"+it.Name())
}

func createTestPlayer(t *testing.T, gold int64, capacity int) *player.Player {
	t.Helper()
	store, err := inventory.New(capacity)
	require.NoError(t, err)
	p, err := player.New("Tester", 10, decimal.NewFromInt(gold), player.WithInventory(store))
	require.NoError(t, err)
	return p
}

func createTestBus(t *testing.T) (*event.Bus, *recorder) {
	t.Helper()
	bus := event.NewBus()
	rec := &recorder{}
	bus.Register(rec)
	return bus, rec
}

func gold(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestBuy_ExecuteAndUndo(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	sword := item.NewWeapon("Iron Sword", gold(600), 15)
	shop, err := catalog.New(sword)
	require.NoError(t, err)
	bus, rec := createTestBus(t)
	buy := NewBuy(p, sword, sword.Price(), shop, bus)

	// ACT
	applied := buy.Execute(ctx)

	// ASSERT
	require.True(t, applied)
	assert.True(t, buy.Executed())
	assert.True(t, gold(400).Equal(p.Gold()))
	assert.True(t, p.Inventory().IsStored(sword))
	assert.True(t, shop.IsDepleted(sword))
	assert.Equal(t, []string{"gold", "inventory", "catalog"}, rec.events)
	assert.Equal(t, "Buy Iron Sword for 600 gold", buy.Description())

	// ACT
	require.True(t, buy.Undo(ctx))

	// ASSERT
	assert.False(t, buy.Executed())
	assert.True(t, gold(1000).Equal(p.Gold()))
	assert.False(t, p.Inventory().Owns(sword))
	assert.True(t, shop.IsAvailable(sword))
}

func TestBuy_GuardedNoOps(t *testing.T) {
	ctx := context.Background()
	sword := item.NewWeapon("Sword", gold(600), 15)

	tests := []struct {
		name  string
		setup func(t *testing.T) (*player.Player, *catalog.Catalog)
	}{
		{
			name: "insufficient gold",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog) {
				shop, err := catalog.New(sword)
				require.NoError(t, err)
				return createTestPlayer(t, 599, 6), shop
			},
		},
		{
			name: "inventory full",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog) {
				p := createTestPlayer(t, 1000, 1)
				require.NoError(t, p.Store().Add(item.NewPotion("Potion", gold(1), 1)))
				shop, err := catalog.New(sword)
				require.NoError(t, err)
				return p, shop
			},
		},
		{
			name: "already owned",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog) {
				p := createTestPlayer(t, 1000, 6)
				require.NoError(t, p.Store().Add(sword))
				shop, err := catalog.New(sword)
				require.NoError(t, err)
				return p, shop
			},
		},
		{
			name: "not in catalog",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog) {
				shop, err := catalog.New()
				require.NoError(t, err)
				return createTestPlayer(t, 1000, 6), shop
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, shop := tt.setup(t)
			before := p.Gold()
			storedBefore := len(p.Inventory().Stored())

			assert.False(t, NewBuy(p, sword, sword.Price(), shop, nil).Execute(ctx))
			assert.True(t, before.Equal(p.Gold()))
			assert.Len(t, p.Inventory().Stored(), storedBefore)
		})
	}
}

func TestBuy_DoubleExecuteIsNoOp(t *testing.T) {
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	potion := item.NewPotion("Health Potion", gold(50), 100)
	buy := NewBuy(p, potion, potion.Price(), nil, nil)

	require.True(t, buy.Execute(ctx))
	assert.False(t, buy.Execute(ctx))
	assert.True(t, gold(950).Equal(p.Gold()))
}

func TestBuy_UndoRefusedWhenItemEquipped(t *testing.T) {
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	sword := item.NewWeapon("Sword", gold(100), 5)
	buy := NewBuy(p, sword, sword.Price(), nil, nil)
	require.True(t, buy.Execute(ctx))
	_, err := p.Store().Equip(sword)
	require.NoError(t, err)

	assert.False(t, buy.Undo(ctx))
	assert.True(t, buy.Executed())
	assert.True(t, gold(900).Equal(p.Gold()))
}

func TestSell_ExecuteAndUndo(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 100, 6)
	sword := item.NewWeapon("Longsword", gold(500), 25)
	ring := item.NewAccessory("Emerald Ring", gold(1500), 50)
	require.NoError(t, p.Store().Add(ring))
	require.NoError(t, p.Store().Add(sword))
	shop, err := catalog.New(sword)
	require.NoError(t, err)
	require.NoError(t, shop.Deplete(sword))
	sell := NewSell(p, ring, shop, nil)

	// ACT
	require.True(t, sell.Execute(ctx))

	// ASSERT
	assert.True(t, gold(1300).Equal(p.Gold()))
	assert.True(t, gold(1200).Equal(sell.Amount()))
	assert.False(t, p.Inventory().Owns(ring))
	assert.Equal(t, "Sell Emerald Ring for 1200 gold", sell.Description())

	// ACT
	require.True(t, sell.Undo(ctx))

	// ASSERT
	assert.True(t, gold(100).Equal(p.Gold()))
	assert.Equal(t, []item.Item{ring, sword}, p.Inventory().Stored())
}

func TestSell_RestocksDepletedItem(t *testing.T) {
	ctx := context.Background()
	p := createTestPlayer(t, 0, 6)
	sword := item.NewWeapon("Longsword", gold(500), 25)
	require.NoError(t, p.Store().Add(sword))
	shop, err := catalog.New(sword)
	require.NoError(t, err)
	require.NoError(t, shop.Deplete(sword))
	bus, rec := createTestBus(t)
	sell := NewSell(p, sword, shop, bus)

	require.True(t, sell.Execute(ctx))
	assert.True(t, shop.IsAvailable(sword))
	assert.Equal(t, []string{"gold", "inventory", "catalog"}, rec.events)

	require.True(t, sell.Undo(ctx))
	assert.True(t, shop.IsDepleted(sword))
	assert.True(t, decimal.Zero.Equal(p.Gold()))
}

func TestSell_WithSellRatio(t *testing.T) {
	p := createTestPlayer(t, 0, 6)
	potion := item.NewPotion("Potion", gold(50), 100)
	require.NoError(t, p.Store().Add(potion))

	sell := NewSell(p, potion, nil, nil, WithSellRatio(decimal.RequireFromString("0.5")))

	require.True(t, sell.Execute(context.Background()))
	assert.True(t, gold(25).Equal(p.Gold()))
}

func TestSell_RefusesEquippedItem(t *testing.T) {
	p := createTestPlayer(t, 0, 6)
	armor := item.NewArmor("Iron Armor", gold(800), 20)
	require.NoError(t, p.Store().Add(armor))
	_, err := p.Store().Equip(armor)
	require.NoError(t, err)

	assert.False(t, NewSell(p, armor, nil, nil).Execute(context.Background()))
	assert.True(t, decimal.Zero.Equal(p.Gold()))
}

func TestSell_UndoRefusedWhenGoldSpent(t *testing.T) {
	ctx := context.Background()
	p := createTestPlayer(t, 0, 6)
	ring := item.NewAccessory("Ring", gold(100), 5)
	require.NoError(t, p.Store().Add(ring))
	sell := NewSell(p, ring, nil, nil)
	require.True(t, sell.Execute(ctx))
	require.NoError(t, p.Debit(gold(50)))

	assert.False(t, sell.Undo(ctx))
	assert.True(t, sell.Executed())
	assert.False(t, p.Inventory().Owns(ring))
}

func TestEquip_ExecuteAndUndo(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 0, 6)
	potion := item.NewPotion("Potion", gold(50), 100)
	sword := item.NewWeapon("Sword", gold(500), 25)
	require.NoError(t, p.Store().Add(potion))
	require.NoError(t, p.Store().Add(sword))
	bus, rec := createTestBus(t)
	equip := NewEquip(p, potion, bus)

	// ACT
	require.True(t, equip.Execute(ctx))

	// ASSERT
	assert.Equal(t, []item.Item{potion}, p.Inventory().Equipped())
	assert.Equal(t, []item.Item{sword}, p.Inventory().Stored())
	assert.Equal(t, 100+100, p.EffectiveStats().Health)
	assert.Equal(t, []string{"equipped:Potion", "inventory"}, rec.events)

	// ACT
	require.True(t, equip.Undo(ctx))

	// ASSERT
	assert.Empty(t, p.Inventory().Equipped())
	assert.Equal(t, []item.Item{potion, sword}, p.Inventory().Stored())
	assert.Equal(t, "unequipped:Potion", rec.events[2])
}

func TestEquip_RequiresStoredItem(t *testing.T) {
	p := createTestPlayer(t, 0, 6)
	sword := item.NewWeapon("Sword", gold(500), 25)

	assert.False(t, NewEquip(p, sword, nil).Execute(context.Background()))
}

func TestUnequip_RefusedWhenStorageFull(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 0, 2)
	sword := item.NewWeapon("Sword", gold(500), 25)
	require.NoError(t, p.Store().Add(sword))
	_, err := p.Store().Equip(sword)
	require.NoError(t, err)
	require.NoError(t, p.Store().Add(item.NewPotion("Potion A", gold(1), 1)))
	require.NoError(t, p.Store().Add(item.NewPotion("Potion B", gold(1), 1)))

	// ACT
	applied := NewUnequip(p, sword, nil).Execute(ctx)

	// ASSERT
	assert.False(t, applied)
	assert.True(t, p.Inventory().IsEquipped(sword))
	assert.Len(t, p.Inventory().Stored(), 2)
}

func TestUnequip_ExecuteAndUndo(t *testing.T) {
	ctx := context.Background()
	p := createTestPlayer(t, 0, 6)
	sword := item.NewWeapon("Sword", gold(500), 25)
	armor := item.NewArmor("Armor", gold(800), 20)
	for _, it := range []item.Item{sword, armor} {
		require.NoError(t, p.Store().Add(it))
		_, err := p.Store().Equip(it)
		require.NoError(t, err)
	}
	unequip := NewUnequip(p, sword, nil)

	require.True(t, unequip.Execute(ctx))
	assert.Equal(t, []item.Item{armor}, p.Inventory().Equipped())
	assert.True(t, p.Inventory().IsStored(sword))

	require.True(t, unequip.Undo(ctx))
	assert.Equal(t, []item.Item{sword, armor}, p.Inventory().Equipped())
	assert.Empty(t, p.Inventory().Stored())
}

func TestUpgrade_ReplacesInPlace(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	potion := item.NewPotion("Potion", gold(50), 100)
	sword := item.NewWeapon("Longsword", gold(500), 25)
	require.NoError(t, p.Store().Add(potion))
	require.NoError(t, p.Store().Add(sword))
	plan, err := item.NewUpgradePlan(item.UpgradeAttack)
	require.NoError(t, err)
	upgraded, err := plan.Apply(sword)
	require.NoError(t, err)
	bus, rec := createTestBus(t)
	up := NewUpgrade(p, sword, upgraded, plan.Cost(), bus)

	// ACT
	require.True(t, up.Execute(ctx))

	// ASSERT
	assert.Equal(t, []item.Item{potion, upgraded}, p.Inventory().Stored())
	assert.True(t, gold(700).Equal(p.Gold()))
	assert.Equal(t, []string{"gold", "inventory"}, rec.events)
	assert.Equal(t, "Upgrade Longsword for 300 gold", up.Description())

	// ACT
	require.True(t, up.Undo(ctx))

	// ASSERT
	assert.Equal(t, []item.Item{potion, sword}, p.Inventory().Stored())
	assert.True(t, gold(1000).Equal(p.Gold()))
}

func TestUpgrade_GuardedNoOps(t *testing.T) {
	ctx := context.Background()
	sword := item.NewWeapon("Sword", gold(500), 25)
	upgraded := item.WithAttackBoost(sword, 15)

	poor := createTestPlayer(t, 100, 6)
	require.NoError(t, poor.Store().Add(sword))
	assert.False(t, NewUpgrade(poor, sword, upgraded, gold(300), nil).Execute(ctx))
	assert.True(t, poor.Inventory().IsStored(sword))

	empty := createTestPlayer(t, 1000, 6)
	assert.False(t, NewUpgrade(empty, sword, upgraded, gold(300), nil).Execute(ctx))
	assert.True(t, gold(1000).Equal(empty.Gold()))
}

// shopState is everything a command may touch, captured by value
type shopState struct {
	gold      string
	stored    []item.Item
	equipped  []item.Item
	available []item.Item
	depleted  []item.Item
}

func captureState(p *player.Player, shop *catalog.Catalog) shopState {
	return shopState{
		gold:      p.Gold().String(),
		stored:    orNil(p.Inventory().Stored()),
		equipped:  orNil(p.Inventory().Equipped()),
		available: orNil(shop.Available()),
		depleted:  orNil(shop.Depleted()),
	}
}

// orNil makes empty and nil collections compare equal
func orNil(items []item.Item) []item.Item {
	if len(items) == 0 {
		return nil
	}
	return items
}

func TestCommands_GuardsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (*player.Player, *catalog.Catalog, Command)
	}{
		{
			name: "buy",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog, Command) {
				p := createTestPlayer(t, 5000, 6)
				sword := item.NewWeapon("Sword", gold(200), 10)
				shop, err := catalog.New(item.NewPotion("Potion", gold(50), 10), sword)
				require.NoError(t, err)
				return p, shop, NewBuy(p, sword, sword.Price(), shop, nil)
			},
		},
		{
			name: "sell",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog, Command) {
				p := createTestPlayer(t, 5000, 6)
				sword := item.NewWeapon("Sword", gold(200), 10)
				shop, err := catalog.New(sword)
				require.NoError(t, err)
				require.NoError(t, shop.Deplete(sword))
				require.NoError(t, p.Store().Add(sword))
				return p, shop, NewSell(p, sword, shop, nil)
			},
		},
		{
			name: "equip",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog, Command) {
				p := createTestPlayer(t, 5000, 6)
				sword := item.NewWeapon("Sword", gold(200), 10)
				shop, err := catalog.New()
				require.NoError(t, err)
				require.NoError(t, p.Store().Add(sword))
				return p, shop, NewEquip(p, sword, nil)
			},
		},
		{
			name: "unequip",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog, Command) {
				p := createTestPlayer(t, 5000, 6)
				sword := item.NewWeapon("Sword", gold(200), 10)
				shop, err := catalog.New()
				require.NoError(t, err)
				require.NoError(t, p.Store().Add(sword))
				_, err = p.Store().Equip(sword)
				require.NoError(t, err)
				return p, shop, NewUnequip(p, sword, nil)
			},
		},
		{
			name: "upgrade",
			setup: func(t *testing.T) (*player.Player, *catalog.Catalog, Command) {
				p := createTestPlayer(t, 5000, 6)
				sword := item.NewWeapon("Sword", gold(200), 10)
				shop, err := catalog.New()
				require.NoError(t, err)
				require.NoError(t, p.Store().Add(sword))
				return p, shop, NewUpgrade(p, sword, item.WithAttackBoost(sword, 15), gold(300), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ctx := context.Background()
			p, shop, cmd := tt.setup(t)
			before := captureState(p, shop)

			// ACT + ASSERT - undo before any execute
			assert.False(t, cmd.Undo(ctx))
			assert.False(t, cmd.Executed())
			assert.Equal(t, before, captureState(p, shop))

			// ACT + ASSERT - second execute is a no-op
			require.True(t, cmd.Execute(ctx))
			after := captureState(p, shop)
			assert.NotEqual(t, before, after)
			assert.False(t, cmd.Execute(ctx))
			assert.True(t, cmd.Executed())
			assert.Equal(t, after, captureState(p, shop))

			// ACT + ASSERT - second undo is a no-op
			require.True(t, cmd.Undo(ctx))
			assert.Equal(t, before, captureState(p, shop))
			assert.False(t, cmd.Undo(ctx))
			assert.Equal(t, before, captureState(p, shop))
		})
	}
}

func TestUpgrade_ReexecuteReinstatesSameItem(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	sword := item.NewWeapon("Longsword", gold(500), 25)
	require.NoError(t, p.Store().Add(sword))
	_, err := p.Store().Equip(sword)
	require.NoError(t, err)
	upgraded := item.WithAttackBoost(sword, 15)
	up := NewUpgrade(p, sword, upgraded, gold(300), nil)

	// ACT
	require.True(t, up.Execute(ctx))
	require.True(t, up.Undo(ctx))
	require.True(t, up.Execute(ctx))

	// ASSERT
	equipped := p.Inventory().Equipped()
	require.Len(t, equipped, 1)
	assert.Same(t, upgraded, equipped[0])
	assert.Same(t, upgraded, up.Upgraded())
	assert.True(t, gold(700).Equal(p.Gold()))
}

func TestBuy_UndoRestoresCatalogOrder(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	a := item.NewWeapon("A", gold(100), 1)
	b := item.NewWeapon("B", gold(100), 1)
	c := item.NewWeapon("C", gold(100), 1)
	shop, err := catalog.New(a, b, c)
	require.NoError(t, err)
	buyA := NewBuy(p, a, a.Price(), shop, nil)
	buyB := NewBuy(p, b, b.Price(), shop, nil)

	// ACT
	require.True(t, buyA.Execute(ctx))
	require.True(t, buyB.Execute(ctx))
	require.True(t, buyB.Undo(ctx))
	require.True(t, buyA.Undo(ctx))

	// ASSERT
	assert.Equal(t, []item.Item{a, b, c}, shop.Available())
	assert.Empty(t, shop.Depleted())
}

func TestSell_UndoRestoresDepletedOrder(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := createTestPlayer(t, 1000, 6)
	a := item.NewWeapon("A", gold(100), 1)
	b := item.NewWeapon("B", gold(100), 1)
	shop, err := catalog.New(a, b)
	require.NoError(t, err)
	require.NoError(t, shop.Deplete(a))
	require.NoError(t, shop.Deplete(b))
	require.NoError(t, p.Store().Add(a))
	sell := NewSell(p, a, shop, nil)

	// ACT
	require.True(t, sell.Execute(ctx))
	require.True(t, sell.Undo(ctx))

	// ASSERT
	assert.Equal(t, []item.Item{a, b}, shop.Depleted())
}

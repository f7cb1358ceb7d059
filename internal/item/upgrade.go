package item

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
)

// Upgrade is a shop-offered modifier with a fixed gold cost
type Upgrade struct {
	Key      string
	Modifier Modifier
	Cost     decimal.Decimal
}

// Preset upgrade keys
const (
	UpgradeAttack  = "attack"
	UpgradeDefense = "defense"
	UpgradeHealth  = "health"
)

// Presets lists the shop's upgrades in the order they are applied
var Presets = []Upgrade{
	{Key: UpgradeAttack, Modifier: Modifier{Kind: ModAttackBoost, Bonus: 15}, Cost: decimal.NewFromInt(300)},
	{Key: UpgradeDefense, Modifier: Modifier{Kind: ModDefenseBoost, Bonus: 20}, Cost: decimal.NewFromInt(400)},
	{Key: UpgradeHealth, Modifier: Modifier{Kind: ModHealthBoost, Bonus: 50}, Cost: decimal.NewFromInt(200)},
}

// UpgradePlan is a selection of presets. Whatever order keys are given in,
// the plan applies attack, then defense, then health.
type UpgradePlan struct {
	upgrades []Upgrade
}

// NewUpgradePlan selects presets by key. Duplicate keys are collapsed.
func NewUpgradePlan(keys ...string) (UpgradePlan, error) {
	selected := make(map[string]bool, len(keys))
	for _, k := range keys {
		key := strings.ToLower(strings.TrimSpace(k))
		if !isPreset(key) {
			return UpgradePlan{}, fmt.Errorf(ErrMsgInvalidUpgradeFmt, domain.ErrUnknownModifier, k)
		}
		selected[key] = true
	}

	var plan UpgradePlan
	for _, preset := range Presets {
		if selected[preset.Key] {
			plan.upgrades = append(plan.upgrades, preset)
		}
	}
	return plan, nil
}

func isPreset(key string) bool {
	for _, preset := range Presets {
		if preset.Key == key {
			return true
		}
	}
	return false
}

// Empty reports whether no upgrade is selected
func (p UpgradePlan) Empty() bool {
	return len(p.upgrades) == 0
}

// Upgrades returns the selected presets in application order
func (p UpgradePlan) Upgrades() []Upgrade {
	out := make([]Upgrade, len(p.upgrades))
	copy(out, p.upgrades)
	return out
}

// Cost is the total gold the plan charges
func (p UpgradePlan) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, u := range p.upgrades {
		total = total.Add(u.Cost)
	}
	return total
}

// Apply wraps base with every selected modifier. base is left untouched.
func (p UpgradePlan) Apply(base Item) (Item, error) {
	if p.Empty() {
		return nil, fmt.Errorf(ErrMsgEmptyUpgradePlan, domain.ErrInvalidInput)
	}
	if base == nil {
		return nil, fmt.Errorf(ErrMsgNilInner, domain.ErrNilItem)
	}

	current := base
	for _, u := range p.upgrades {
		wrapped, err := u.Modifier.Apply(current)
		if err != nil {
			return nil, err
		}
		current = wrapped
	}
	return current, nil
}

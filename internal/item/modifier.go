package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/shopkeep/internal/domain"
)

// ModifierKind tags the behaviour of a modifier layer
type ModifierKind string

const (
	ModAttackBoost  ModifierKind = "attack"
	ModDefenseBoost ModifierKind = "defense"
	ModHealthBoost  ModifierKind = "health"
	ModElemental    ModifierKind = "elemental"
)

// Element is the damage type of an elemental modifier
type Element string

const (
	ElementFire      Element = "Fire"
	ElementIce       Element = "Ice"
	ElementLightning Element = "Lightning"
)

var elementStats = map[Element]string{
	ElementFire:      domain.StatFireDamage,
	ElementIce:       domain.StatIceDamage,
	ElementLightning: domain.StatLightningDamage,
}

// StatKey returns the stat an element adds damage to
func (e Element) StatKey() string {
	return elementStats[e]
}

// ParseElement converts a case-insensitive element name
func ParseElement(s string) (Element, error) {
	title := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(s)))
	e := Element(title)
	if _, ok := elementStats[e]; !ok {
		return "", fmt.Errorf(ErrMsgInvalidElementFmt, domain.ErrUnknownElement, s)
	}
	return e, nil
}

type boostSpec struct {
	stat          string
	pricePerPoint int64
	label         string
	statName      string
}

var boostSpecs = map[ModifierKind]boostSpec{
	ModAttackBoost:  {stat: domain.StatAttack, pricePerPoint: AttackPricePerPoint, label: "ATK", statName: "Attack"},
	ModDefenseBoost: {stat: domain.StatDefense, pricePerPoint: DefensePricePerPoint, label: "DEF", statName: "Defense"},
	ModHealthBoost:  {stat: domain.StatHealth, pricePerPoint: HealthPricePerPoint, label: "HP", statName: "Health"},
}

// Modifier is the fixed payload of one layer: a kind plus either a bonus or an element
type Modifier struct {
	Kind    ModifierKind
	Bonus   int
	Element Element
}

// Apply wraps inner with this modifier after checking the payload
func (m Modifier) Apply(inner Item) (*Modified, error) {
	if inner == nil {
		return nil, fmt.Errorf(ErrMsgNilInner, domain.ErrNilItem)
	}
	switch m.Kind {
	case ModAttackBoost, ModDefenseBoost, ModHealthBoost:
		if m.Bonus <= 0 {
			return nil, fmt.Errorf(ErrMsgInvalidBonusFmt, domain.ErrInvalidInput, m.Bonus)
		}
	case ModElemental:
		if _, ok := elementStats[m.Element]; !ok {
			return nil, fmt.Errorf(ErrMsgInvalidElementFmt, domain.ErrUnknownElement, string(m.Element))
		}
	default:
		return nil, fmt.Errorf(ErrMsgInvalidModifierFmt, domain.ErrUnknownModifier, string(m.Kind))
	}
	return &Modified{inner: inner, mod: m}, nil
}

// String renders the modifier in the "kind:payload" form accepted by ParseModifier
func (m Modifier) String() string {
	if m.Kind == ModElemental {
		return string(m.Kind) + ":" + strings.ToLower(string(m.Element))
	}
	return string(m.Kind) + ":" + strconv.Itoa(m.Bonus)
}

// ParseModifier parses "attack:15", "defense:20", "health:50" or "elemental:fire"
func ParseModifier(spec string) (Modifier, error) {
	kindPart, payload, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return Modifier{}, fmt.Errorf(ErrMsgInvalidModifierFmt, domain.ErrUnknownModifier, spec)
	}
	kind := ModifierKind(strings.ToLower(strings.TrimSpace(kindPart)))

	switch kind {
	case ModAttackBoost, ModDefenseBoost, ModHealthBoost:
		bonus, err := strconv.Atoi(strings.TrimSpace(payload))
		if err != nil {
			return Modifier{}, fmt.Errorf(ErrMsgInvalidModifierFmt, domain.ErrUnknownModifier, spec)
		}
		if bonus <= 0 {
			return Modifier{}, fmt.Errorf(ErrMsgInvalidBonusFmt, domain.ErrInvalidInput, bonus)
		}
		return Modifier{Kind: kind, Bonus: bonus}, nil
	case ModElemental:
		element, err := ParseElement(payload)
		if err != nil {
			return Modifier{}, err
		}
		return Modifier{Kind: kind, Element: element}, nil
	default:
		return Modifier{}, fmt.Errorf(ErrMsgInvalidModifierFmt, domain.ErrUnknownModifier, spec)
	}
}

// Modified is one modifier layer around an inner item. It overrides name,
// price, stats and description and delegates rarity. Every value is derived
// from the inner item's composed values on each call; the inner item is
// never changed.
type Modified struct {
	inner Item
	mod   Modifier
}

// WithAttackBoost wraps inner with an attack boost. inner must not be nil.
func WithAttackBoost(inner Item, bonus int) *Modified {
	return &Modified{inner: inner, mod: Modifier{Kind: ModAttackBoost, Bonus: bonus}}
}

// WithDefenseBoost wraps inner with a defense boost. inner must not be nil.
func WithDefenseBoost(inner Item, bonus int) *Modified {
	return &Modified{inner: inner, mod: Modifier{Kind: ModDefenseBoost, Bonus: bonus}}
}

// WithHealthBoost wraps inner with a health boost. inner must not be nil.
func WithHealthBoost(inner Item, bonus int) *Modified {
	return &Modified{inner: inner, mod: Modifier{Kind: ModHealthBoost, Bonus: bonus}}
}

// WithElement wraps inner with an elemental enchantment. inner must not be nil.
func WithElement(inner Item, element Element) *Modified {
	return &Modified{inner: inner, mod: Modifier{Kind: ModElemental, Element: element}}
}

func (m *Modified) Inner() Item        { return m.inner }
func (m *Modified) Modifier() Modifier { return m.mod }
func (m *Modified) String() string     { return String(m) }

// Rarity is never altered by a modifier
func (m *Modified) Rarity() domain.Rarity {
	return m.inner.Rarity()
}

func (m *Modified) Name() string {
	if m.mod.Kind == ModElemental {
		return fmt.Sprintf(NameElementSuffixFmt, m.inner.Name(), cases.Upper(language.Und).String(string(m.mod.Element)))
	}
	if spec, ok := boostSpecs[m.mod.Kind]; ok {
		return fmt.Sprintf(NameBoostSuffixFmt, m.inner.Name(), spec.label, m.mod.Bonus)
	}
	return m.inner.Name()
}

func (m *Modified) Price() decimal.Decimal {
	inner := m.inner.Price()
	var price decimal.Decimal
	switch m.mod.Kind {
	case ModElemental:
		price = inner.Mul(ElementalPriceMultiplier)
	default:
		spec, ok := boostSpecs[m.mod.Kind]
		if !ok {
			return inner
		}
		price = inner.Add(decimal.NewFromInt(int64(m.mod.Bonus) * spec.pricePerPoint))
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

func (m *Modified) Stats() map[string]int {
	stats := m.inner.Stats()
	if stats == nil {
		stats = make(map[string]int)
	}
	switch m.mod.Kind {
	case ModElemental:
		if key := m.mod.Element.StatKey(); key != "" {
			stats[key] += ElementalStatBonus
		}
	default:
		if spec, ok := boostSpecs[m.mod.Kind]; ok {
			stats[spec.stat] += m.mod.Bonus
		}
	}
	return stats
}

func (m *Modified) Description() string {
	if m.mod.Kind == ModElemental {
		return fmt.Sprintf(DescElementalSuffixFmt, m.inner.Description(), m.mod.Element)
	}
	if spec, ok := boostSpecs[m.mod.Kind]; ok {
		return fmt.Sprintf(DescBoostSuffixFmt, m.inner.Description(), m.mod.Bonus, spec.statName)
	}
	return m.inner.Description()
}

// Unwrap strips every modifier layer and returns the base item
func Unwrap(it Item) Item {
	for {
		m, ok := it.(*Modified)
		if !ok {
			return it
		}
		it = m.inner
	}
}

// Layers returns the modifiers of it from outermost to innermost
func Layers(it Item) []Modifier {
	var layers []Modifier
	for {
		m, ok := it.(*Modified)
		if !ok {
			return layers
		}
		layers = append(layers, m.mod)
		it = m.inner
	}
}

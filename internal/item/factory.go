package item

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
)

var kindAliases = map[string]Kind{
	"WEAPON":     KindWeapon,
	"ARMOR":      KindArmor,
	"POTION":     KindPotion,
	"CONSUMABLE": KindConsumable,
	"ACCESSORY":  KindAccessory,
	"TRINKET":    KindAccessory,
	"CUSTOM":     KindCustom,
}

// ParseKind resolves a case-insensitive factory key to a Kind
func ParseKind(s string) (Kind, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return "", fmt.Errorf(ErrMsgEmptyKindFmt, domain.ErrUnknownItemKind)
	}
	kind, ok := kindAliases[key]
	if !ok {
		return "", fmt.Errorf(ErrMsgInvalidKindFmt, domain.ErrUnknownItemKind, s)
	}
	return kind, nil
}

// New creates a base item of the given kind. value is the kind's primary stat.
// Custom items carry arbitrary stats and must be made with the Builder.
func New(kind string, name string, price decimal.Decimal, value int) (Item, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if k == KindCustom {
		return nil, fmt.Errorf(ErrMsgCustomKindFmt, domain.ErrUnknownItemKind, kind)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf(ErrMsgNegativePriceFmt, domain.ErrInvalidPrice, price.String())
	}
	return newBase(k, name, price, value), nil
}

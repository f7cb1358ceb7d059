package item

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// String renders it as "[RARITY] Name - Price: P gold - Stats: {k:v, ...}".
// Stat keys are sorted so the output is stable.
func String(it Item) string {
	if it == nil {
		return ""
	}
	stats := it.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+strconv.Itoa(stats[k]))
	}

	return fmt.Sprintf(ItemLineFmt,
		cases.Upper(language.Und).String(string(it.Rarity())),
		it.Name(),
		it.Price().String(),
		strings.Join(parts, ", "),
	)
}

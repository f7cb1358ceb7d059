package catalog

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/shopkeep/internal/domain"
	"github.com/osse101/shopkeep/internal/item"
	"github.com/osse101/shopkeep/internal/logger"
	"github.com/osse101/shopkeep/internal/schema"
)

//go:embed schemas/catalog.schema.json
var catalogSchema []byte

// Seed is the JSON layout of a catalog seed file
type Seed struct {
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Items       []SeedDef `json:"items"`
}

// SeedDef is one listing. Base kinds use value for their primary stat;
// CUSTOM entries use rarity, stats and effects instead.
type SeedDef struct {
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Value       int             `json:"value,omitempty"`
	Rarity      string          `json:"rarity,omitempty"`
	Description string          `json:"description,omitempty"`
	Stats       map[string]int  `json:"stats,omitempty"`
	Effects     []string        `json:"effects,omitempty"`
	Modifiers   []string        `json:"modifiers,omitempty"`
}

// SeedInfo describes a loaded seed file
type SeedInfo struct {
	Path    string
	Version string
	Items   int
	Hash    string
}

// Loader reads, validates and builds catalogs from seed files
type Loader interface {
	Load(path string) (*Seed, error)
	Validate(seed *Seed) error
	Build(seed *Seed) (*Catalog, error)
}

type seedLoader struct {
	schemaValidator schema.Validator
}

// NewLoader creates a Loader with the embedded catalog schema registered
func NewLoader() (Loader, error) {
	v := schema.NewValidator()
	if err := v.Register(SchemaID, catalogSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFail, err)
	}
	return &seedLoader{schemaValidator: v}, nil
}

// Load reads a seed file and checks it against the schema
func (l *seedLoader) Load(path string) (*Seed, error) {
	resolved, err := schema.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	return l.parse(data, path)
}

func (l *seedLoader) parse(data []byte, source string) (*Seed, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaID); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, source, err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}
	return &seed, nil
}

// Validate checks what the schema cannot: unique names and buildable entries
func (l *seedLoader) Validate(seed *Seed) error {
	if seed == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSeedEntry, ErrMsgSeedNil)
	}
	if len(seed.Items) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSeedEntry, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(seed.Items))
	for i := range seed.Items {
		def := &seed.Items[i]
		if strings.TrimSpace(def.Name) == "" {
			return fmt.Errorf(ErrFmtEntryEmptyName, domain.ErrInvalidSeedEntry, i)
		}
		key := strings.ToLower(def.Name)
		if names[key] {
			return fmt.Errorf(ErrFmtDuplicateName, domain.ErrInvalidSeedEntry, def.Name)
		}
		names[key] = true

		if _, err := buildItem(def); err != nil {
			return fmt.Errorf(ErrFmtEntryFailed, domain.ErrInvalidSeedEntry, def.Name, err)
		}
	}
	return nil
}

// Build creates a catalog listing every seed entry as available, in file order
func (l *seedLoader) Build(seed *Seed) (*Catalog, error) {
	if err := l.Validate(seed); err != nil {
		return nil, err
	}

	c := &Catalog{}
	for i := range seed.Items {
		it, err := buildItem(&seed.Items[i])
		if err != nil {
			return nil, fmt.Errorf(ErrFmtEntryFailed, domain.ErrInvalidSeedEntry, seed.Items[i].Name, err)
		}
		if err := c.Add(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildItem(def *SeedDef) (item.Item, error) {
	kind, err := item.ParseKind(def.Kind)
	if err != nil {
		return nil, err
	}

	var it item.Item
	if kind == item.KindCustom {
		b := item.NewBuilder().
			Name(def.Name).
			Price(def.Price).
			Description(def.Description)
		if def.Rarity != "" {
			b.Rarity(def.Rarity)
		}
		for key, value := range def.Stats {
			b.Stat(key, value)
		}
		for _, effect := range def.Effects {
			b.Effect(effect)
		}
		it = b.Build()
	} else {
		it, err = item.New(def.Kind, def.Name, def.Price, def.Value)
		if err != nil {
			return nil, err
		}
	}

	for _, spec := range def.Modifiers {
		mod, err := item.ParseModifier(spec)
		if err != nil {
			return nil, err
		}
		if it, err = mod.Apply(it); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// LoadFile reads, validates and builds the catalog at path in one step
func LoadFile(ctx context.Context, path string) (*Catalog, SeedInfo, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, SeedInfo{}, err
	}

	resolved, err := schema.ResolvePath(path)
	if err != nil {
		return nil, SeedInfo{}, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, SeedInfo{}, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}

	c, info, err := load(l.(*seedLoader), data, path)
	if err != nil {
		return nil, SeedInfo{}, err
	}

	logger.FromContext(ctx).Info(LogMsgSeedLoaded,
		"path", info.Path,
		"version", info.Version,
		"items", info.Items,
		"hash", info.Hash)
	return c, info, nil
}

// LoadBytes builds a catalog from an in-memory seed document
func LoadBytes(data []byte) (*Catalog, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	c, _, err := load(l.(*seedLoader), data, "<bytes>")
	return c, err
}

func load(l *seedLoader, data []byte, source string) (*Catalog, SeedInfo, error) {
	seed, err := l.parse(data, source)
	if err != nil {
		return nil, SeedInfo{}, err
	}
	c, err := l.Build(seed)
	if err != nil {
		return nil, SeedInfo{}, err
	}

	hash := sha256.Sum256(data)
	return c, SeedInfo{
		Path:    source,
		Version: seed.Version,
		Items:   c.Len(),
		Hash:    hex.EncodeToString(hash[:]),
	}, nil
}

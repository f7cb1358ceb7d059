package catalog

// ==================== Schema ====================

// SchemaID is the id the embedded seed schema is registered under
const SchemaID = "https://shopkeep.local/schemas/catalog.schema.json"

// DefaultSeedPath is the repo-relative path of the demo shop's seed file
const DefaultSeedPath = "configs/catalog.json"

// ==================== Error Messages ====================

const (
	ErrMsgAlreadyListedFmt = "%w: %s"
	ErrMsgUnavailableFmt   = "%w: %s"
	ErrMsgNotDepletedFmt   = "%w: %s"
)

// Seed file error messages
const (
	ErrMsgReadSeedFailed     = "failed to read catalog seed file: %w"
	ErrMsgSchemaFailedFmt    = "schema validation failed for %s: %w"
	ErrMsgParseSeedFailed    = "failed to parse catalog seed: %w"
	ErrMsgRegisterSchemaFail = "failed to register catalog schema: %w"
	ErrMsgSeedNil            = "seed is nil"
	ErrMsgNoItemsDefined     = "no items defined"
	ErrFmtEntryEmptyName     = "%w: entry at index %d has empty name"
	ErrFmtDuplicateName      = "%w: duplicate item name %q"
	ErrFmtEntryFailed        = "%w: entry %q: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSeedLoaded = "Catalog seed loaded"
)

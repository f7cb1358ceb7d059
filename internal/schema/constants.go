package schema

// ==================== Error Messages ====================

const (
	ErrMsgReadDataFmt      = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFmt    = "failed to load schema %s: %w"
	ErrMsgParseDataFmt     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFmt    = "failed to read schema file: %w"
	ErrMsgParseSchemaFmt   = "failed to parse schema JSON %s: %w"
	ErrMsgAddResourceFmt   = "failed to add schema resource %s: %w"
	ErrMsgCompileSchemaFmt = "failed to compile schema: %w"
	ErrMsgGetwdFmt         = "failed to get current directory: %w"
	ErrMsgFileNotFoundFmt  = "%w: %s (searched from %s)"
)

// ==================== Formatting ====================

const (
	ValidationLineKeywordFmt = "  - at %s: %s validation failed"
	ValidationLineFmt        = "  - at %s: validation failed"
)

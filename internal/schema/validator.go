// Package schema validates JSON documents such as catalog seed files against
// JSON schemas that are either embedded in the binary or read from disk.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/shopkeep/internal/domain"
)

// Validator validates JSON data against registered schemas
type Validator interface {
	// Register adds a schema document under id. Registering the same id twice
	// is an error.
	Register(id string, schema []byte) error
	ValidateFile(dataPath, schemaID string) error
	ValidateBytes(data []byte, schemaID string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewValidator creates a new schema validator
func NewValidator() Validator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) Register(id string, schema []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf(ErrMsgParseSchemaFmt, id, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.compiler.AddResource(id, doc); err != nil {
		return fmt.Errorf(ErrMsgAddResourceFmt, id, err)
	}
	return nil
}

// ValidateFile validates a JSON file against a schema. A schema id that was
// never registered is treated as a path to a schema file.
func (v *validator) ValidateFile(dataPath, schemaID string) error {
	resolved, err := ResolvePath(dataPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFmt, dataPath, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFmt, dataPath, err)
	}

	return v.ValidateBytes(data, schemaID)
}

func (v *validator) ValidateBytes(data []byte, schemaID string) error {
	sch, err := v.load(schemaID)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFmt, schemaID, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseDataFmt, err)
	}

	if err := sch.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// load compiles a schema once and caches the result
func (v *validator) load(schemaID string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.schemas[schemaID]; ok {
		return sch, nil
	}

	sch, err := v.compiler.Compile(schemaID)
	if err != nil && !isURL(schemaID) {
		// Not registered: fall back to a schema file on disk
		sch, err = v.compileFile(schemaID)
	}
	if err != nil {
		return nil, err
	}

	v.schemas[schemaID] = sch
	return sch, nil
}

func (v *validator) compileFile(schemaPath string) (*jsonschema.Schema, error) {
	resolved, err := ResolvePath(schemaPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemaFmt, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchemaFmt, schemaPath, err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgAddResourceFmt, schemaPath, err)
	}
	sch, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFmt, err)
	}
	return sch, nil
}

func isURL(id string) bool {
	return strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://")
}

// formatValidationError lists every failing location on its own line
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("%w:\n%s", domain.ErrSchemaViolation, strings.Join(lines, "\n"))
	}
	return fmt.Errorf("%w: %w", domain.ErrSchemaViolation, err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if msg := formatError(err); msg != "" {
		*lines = append(*lines, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}

	if keywords != "" {
		return fmt.Sprintf(ValidationLineKeywordFmt, location, keywords)
	}
	return fmt.Sprintf(ValidationLineFmt, location)
}

// ResolvePath finds a relative path from the working directory or any parent
// up to the module root, so tests and binaries can share repo-relative paths
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetwdFmt, err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf(ErrMsgFileNotFoundFmt, os.ErrNotExist, path, cwd)
}

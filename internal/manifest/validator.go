package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var projectSchemaBytes []byte

//go:embed schema/module.schema.json
var moduleSchemaBytes []byte

const (
	projectSchemaURL = "project.schema.json"
	moduleSchemaURL  = "module.schema.json"
)

var (
	projectSchema *jsonschema.Schema
	moduleSchema  *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
	printer       = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/modules/0/src")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

// String formats the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchemas compiles both embedded JSON schemas once.
func getSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		for url, raw := range map[string][]byte{
			projectSchemaURL: projectSchemaBytes,
			moduleSchemaURL:  moduleSchemaBytes,
		} {
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", url, err)
				return
			}
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", url, err)
				return
			}
		}
		if projectSchema, compileErr = c.Compile(projectSchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling project schema: %w", compileErr)
			return
		}
		if moduleSchema, compileErr = c.Compile(moduleSchemaURL); compileErr != nil {
			compileErr = fmt.Errorf("compiling module schema: %w", compileErr)
		}
	})
	return projectSchema, moduleSchema, compileErr
}

// ValidateProject validates raw project.json bytes.
// The error return is for schema compilation failures. Malformed JSON and
// schema violations are returned as issues in the ValidationResult.
func ValidateProject(data []byte) (*ValidationResult, error) {
	ps, _, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateWith(ps, data)
}

// ValidateModule validates raw module.json bytes.
func ValidateModule(data []byte) (*ValidationResult, error) {
	_, ms, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateWith(ms, data)
}

// ValidateFile reads a manifest and validates it against the schema matching
// its file name (project.json or module.json).
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Base(path) {
	case ProjectFile:
		return ValidateProject(data)
	case ModuleFile:
		return ValidateModule(data)
	default:
		return nil, fmt.Errorf("unknown manifest kind %s: expected %s or %s", path, ProjectFile, ModuleFile)
	}
}

func validateWith(schema *jsonschema.Schema, data []byte) (*ValidationResult, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Issues: []ValidationIssue{{Message: "invalid JSON: " + err.Error(), Keyword: "json"}},
		}, nil
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		// Leaf error.
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncode_UnescapedSlashes(t *testing.T) {
	data, err := Encode(DefaultProject())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	content := string(data)
	if strings.Contains(content, `\/`) {
		t.Errorf("encoded manifest contains escaped slash:\n%s", content)
	}
	if !strings.Contains(content, `"dest": "public/assets/app.js"`) {
		t.Errorf("encoded manifest missing asset dest:\n%s", content)
	}
	if !strings.Contains(content, "\n    \"name\": \"BayLang project\"") {
		t.Errorf("encoded manifest is not four-space indented:\n%s", content)
	}
}

func TestEncode_NoTrailingNewline(t *testing.T) {
	data, err := Encode(DefaultModule())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '}' {
		t.Errorf("Encode() output should end with '}', got %q", data[len(data)-10:])
	}
}

func TestEncode_ModuleAllowPattern(t *testing.T) {
	data, err := Encode(DefaultModule())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"\\.bay$"`) {
		t.Errorf("allow pattern not encoded as JSON string \\\\.bay$:\n%s", content)
	}
	if strings.Contains(content, `&`) || strings.Contains(content, `\/`) {
		t.Errorf("unexpected escape sequences:\n%s", content)
	}
}

func TestEncode_EmptyListsAreArrays(t *testing.T) {
	data, err := Encode(DefaultProject())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if _, ok := raw["exclude"].([]any); !ok {
		t.Errorf("exclude = %#v, want empty array", raw["exclude"])
	}
	if raw["author"] != "" {
		t.Errorf("author = %#v, want empty string", raw["author"])
	}
}

func TestDefaultModuleAssetsAreCopied(t *testing.T) {
	m := DefaultModule()
	m.Assets[0] = "changed"
	if ModuleAssets[0] == "changed" {
		t.Error("DefaultModule must not share ModuleAssets backing array")
	}
}

func TestValidateDefaults(t *testing.T) {
	project, err := Encode(DefaultProject())
	if err != nil {
		t.Fatal(err)
	}
	module, err := Encode(DefaultModule())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		validate func([]byte) (*ValidationResult, error)
		data     []byte
	}{
		{"project", ValidateProject, project},
		{"module", ValidateModule, module},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.validate(tt.data)
			if err != nil {
				t.Fatalf("validate error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %v", result.Issues)
			}
		})
	}
}

func TestValidateProject_MissingKeys(t *testing.T) {
	result, err := ValidateProject([]byte(`{"name":"X"}`))
	if err != nil {
		t.Fatalf("ValidateProject error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for manifest without modules/assets")
	}
	assertIssueKeyword(t, result, "required")
}

func TestValidateModule_Invalid(t *testing.T) {
	tests := []struct {
		desc string
		data string
	}{
		{"missing allow", `{"name":"App","assets":[],"src":"./","dest":{"php":"x"}}`},
		{"bad name", `{"name":"1App","assets":[],"src":"./","dest":{"php":"x"},"allow":[]}`},
		{"empty dest", `{"name":"App","assets":[],"src":"./","dest":{},"allow":[]}`},
		{"bad regex", `{"name":"App","assets":[],"src":"./","dest":{"php":"x"},"allow":["(unclosed"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result, err := ValidateModule([]byte(tt.data))
			if err != nil {
				t.Fatalf("ValidateModule error: %v", err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s", tt.desc)
			}
			for _, issue := range result.Issues {
				if issue.Message == "" {
					t.Errorf("issue %+v has empty message", issue)
				}
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	result, err := ValidateProject([]byte("{not json"))
	if err != nil {
		t.Fatalf("ValidateProject() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected malformed JSON to be invalid")
	}
	if len(result.Issues) != 1 || !strings.HasPrefix(result.Issues[0].Message, "invalid JSON") {
		t.Errorf("Issues = %v, want one invalid JSON issue", result.Issues)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	data, err := Encode(DefaultModule())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ModuleFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(dir, "other.json")); err == nil {
		t.Error("expected error for nonexistent file")
	}

	other := filepath.Join(dir, "package.json")
	os.WriteFile(other, []byte("{}"), 0644)
	if _, err := ValidateFile(other); err == nil {
		t.Error("expected error for unknown manifest kind")
	}
}

func TestParseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data, err := Encode(DefaultProject())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ProjectFile)
	os.WriteFile(path, data, 0644)

	p, err := ParseProject(path)
	if err != nil {
		t.Fatalf("ParseProject error: %v", err)
	}
	if p.Name != "BayLang project" {
		t.Errorf("Name = %q", p.Name)
	}
	if len(p.Modules) != 1 || p.Modules[0].Src != "./app" {
		t.Errorf("Modules = %+v", p.Modules)
	}
}

func TestParseModule_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ParseModule(filepath.Join(dir, ModuleFile)); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("[1,2"), 0644)
	if _, err := ParseModule(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func assertIssueKeyword(t *testing.T, result *ValidationResult, keyword string) {
	t.Helper()
	for _, issue := range result.Issues {
		if issue.Keyword == keyword {
			return
		}
	}
	t.Errorf("no issue with keyword %q in %v", keyword, result.Issues)
}

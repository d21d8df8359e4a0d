package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BAYLANG_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	Load()
	return dir
}

func TestDirHonorsEnv(t *testing.T) {
	dir := setupConfig(t)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestRuntimeURLDefault(t *testing.T) {
	setupConfig(t)
	got, err := RuntimeURL()
	if err != nil {
		t.Fatalf("RuntimeURL() error: %v", err)
	}
	want := "https://unpkg.com/vue@3/dist/vue.runtime.global.prod.js"
	if got != want {
		t.Errorf("RuntimeURL() = %q, want %q", got, want)
	}
}

func TestRuntimeURLFromVersion(t *testing.T) {
	setupConfig(t)
	if err := Set(KeyVueVersion, "3.4.21"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, err := RuntimeURL()
	if err != nil {
		t.Fatalf("RuntimeURL() error: %v", err)
	}
	if got != "https://unpkg.com/vue@3.4.21/dist/vue.runtime.global.prod.js" {
		t.Errorf("RuntimeURL() = %q", got)
	}
}

func TestRuntimeURLOverride(t *testing.T) {
	setupConfig(t)
	t.Setenv("BAYLANG_RUNTIME_URL", "http://mirror.local/vue.js")
	got, err := RuntimeURL()
	if err != nil {
		t.Fatalf("RuntimeURL() error: %v", err)
	}
	if got != "http://mirror.local/vue.js" {
		t.Errorf("RuntimeURL() = %q", got)
	}
}

func TestSetWritesFile(t *testing.T) {
	dir := setupConfig(t)
	if err := Set(KeyFetchPolicy, "fail"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
	if Get(KeyFetchPolicy) != "fail" {
		t.Errorf("Get(fetch_policy) = %q, want fail", Get(KeyFetchPolicy))
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	setupConfig(t)
	tests := []struct {
		key, value string
	}{
		{KeyVueVersion, "not a version"},
		{KeyFetchPolicy, "retry"},
		{"unknown_key", "x"},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) expected error", tt.key, tt.value)
		}
	}
}

func TestSetFetchPolicyUsesPolicyValues(t *testing.T) {
	setupConfig(t)
	for _, v := range []string{"fail", "warn", "empty"} {
		if err := Set(KeyFetchPolicy, v); err != nil {
			t.Errorf("Set(fetch_policy, %q) error: %v", v, err)
		}
	}
	err := Set(KeyFetchPolicy, "retry")
	if err == nil || !strings.Contains(err.Error(), "unknown fetch policy") {
		t.Errorf("Set(fetch_policy, retry) error = %v, want unknown fetch policy", err)
	}
}

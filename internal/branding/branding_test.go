package branding

import "testing"

func TestDefaults(t *testing.T) {
	if CLIName() != "baylang" {
		t.Errorf("CLIName() = %q, want %q", CLIName(), "baylang")
	}
	if EnvVar("home") != "BAYLANG_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", EnvVar("home"), "BAYLANG_HOME")
	}
}

func TestVueURL(t *testing.T) {
	want := "https://unpkg.com/vue@3/dist/vue.runtime.global.prod.js"
	if got := VueURL(VueVersion()); got != want {
		t.Errorf("VueURL() = %q, want %q", got, want)
	}
}

func TestModulesReturnsCopy(t *testing.T) {
	m := Modules()
	if len(m) != 3 || m[0] != "App" {
		t.Fatalf("Modules() = %v", m)
	}
	m[0] = "Changed"
	if Modules()[0] != "App" {
		t.Error("Modules() must not expose the internal slice")
	}
}

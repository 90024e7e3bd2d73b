package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, modulePath, yamlText string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module "+modulePath+"\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if yamlText != "" {
		if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yamlText), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "github.com/acme/tool", "")
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Resolved{
		Root:         dir,
		ModulePath:   "github.com/acme/tool",
		AppName:      "tool",
		AppID:        "com.github.acme.tool",
		LogFormat:    "text",
		LogLevel:     "info",
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	}
	if *got != want {
		t.Errorf("Resolve = %+v, want %+v", *got, want)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := writeProject(t, "github.com/acme/tool", `
app:
  name: Sync
  id: com.acme.sync
log:
  format: JSON
  level: debug
screen:
  width: 1080
  height: 1920
`)
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.AppName != "Sync" || got.AppID != "com.acme.sync" {
		t.Errorf("app = %q %q", got.AppName, got.AppID)
	}
	if got.LogFormat != "json" || got.LogLevel != "debug" {
		t.Errorf("log = %q %q", got.LogFormat, got.LogLevel)
	}
	if got.ScreenWidth != 1080 || got.ScreenHeight != 1920 {
		t.Errorf("screen = %dx%d", got.ScreenWidth, got.ScreenHeight)
	}
}

func TestDefaultAppID(t *testing.T) {
	tests := []struct {
		modulePath string
		wantName   string
		wantID     string
	}{
		{"github.com/acme/tool", "tool", "com.github.acme.tool"},
		{"github.com/acme/My-Tool/v2", "My-Tool", "com.github.acme.mytool.v2"},
		{"gitlab.com/9lives/app", "app", "com.gitlab.a9lives.app"},
		{"blocksapp", "blocksapp", "com.example.blocksapp"},
	}
	for _, tt := range tests {
		t.Run(tt.modulePath, func(t *testing.T) {
			name := defaultAppName(tt.modulePath, "/tmp/project")
			if name != tt.wantName {
				t.Errorf("defaultAppName = %q, want %q", name, tt.wantName)
			}
			id := defaultAppID(tt.modulePath, name)
			if id != tt.wantID {
				t.Errorf("defaultAppID = %q, want %q", id, tt.wantID)
			}
			if err := validateAppID(id); err != nil {
				t.Errorf("derived id is invalid: %v", err)
			}
		})
	}
}

func TestValidateAppID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"com.acme.sync", false},
		{"com.acme.sync_2", false},
		{"sync", true},
		{"com..sync", true},
		{"com.2fast", true},
		{"com._x", true},
		{"com.Acme", true},
		{"com.acme-sync", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := validateAppID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad format", "log:\n  format: xml\n", "log.format"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad id", "app:\n  id: Sync\n", "app.id"},
		{"negative size", "screen:\n  width: -1\n", "screen size"},
		{"bad yaml", "app: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, "github.com/acme/tool", tt.yaml)
			_, err := Resolve(dir)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Resolve error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected an error without go.mod")
	}
}

func TestLoadFileRequired(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "custom.yaml")
	if _, err := LoadFile(missing, true); err == nil {
		t.Error("required file should fail when missing")
	}
	cfg, err := LoadFile(missing, false)
	if err != nil || cfg == nil {
		t.Errorf("optional file: cfg=%v err=%v", cfg, err)
	}
}

func TestFindRootFrom(t *testing.T) {
	dir := writeProject(t, "github.com/acme/tool", "")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := FindRootFrom(nested)
	if err != nil {
		t.Fatalf("FindRootFrom: %v", err)
	}
	if got != dir {
		t.Errorf("FindRootFrom = %q, want %q", got, dir)
	}
}

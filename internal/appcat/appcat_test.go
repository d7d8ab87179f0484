package appcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayName(t *testing.T) {
	c := New(nil)

	tests := []struct {
		path string
		want string
	}{
		{"/Applications/Visual Studio Code.app", "Visual Studio Code"},
		{"/usr/bin/firefox", "Firefox"},
		{"/usr/local/bin/my-cool-tool.exe", "My Cool Tool"},
		{"/opt/some_app.desktop", "Some App"},
		{"/Applications/Xcode.app", "Xcode"},
	}

	for _, tt := range tests {
		if got := c.DisplayName(tt.path); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Firefox.app", "Visual Studio Code.app"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	c := New([]string{dir, filepath.Join(dir, "does-not-exist")})

	path, ok := c.Resolve("firefox")
	if !ok {
		t.Fatal("expected firefox to resolve")
	}
	if filepath.Base(path) != "Firefox.app" {
		t.Errorf("unexpected path %s", path)
	}

	if _, ok := c.Resolve("emacs"); ok {
		t.Error("expected no match for emacs")
	}
	if _, ok := c.Resolve("  "); ok {
		t.Error("expected no match for blank query")
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	type tc struct {
		name    string
		dir     string
		wantErr bool
	}
	tests := []tc{
		{"simple name", "my-widgets", false},
		{"relative path", "projects/my-widgets", false},
		{"dot-slash relative", "./projects/my-widgets", false},

		{"empty", "", true},
		{"root slash", "/", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}

	if runtime.GOOS == "windows" {
		tests = append(tests,
			tc{"drive root", `C:\`, true},
			tc{"root-level C:\\Users", `C:\Users`, true},
		)
	} else {
		tests = append(tests,
			tc{"absolute nested", "/home/user/projects/my-widgets", false},
			tc{"root-level /etc", "/etc", true},
			tc{"root-level /tmp", "/tmp", true},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDirectory(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDirectory(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "widgets", false},
		{"with hyphen", "my-widgets", false},
		{"with underscore", "my_widgets", false},
		{"with numbers", "widgets2", false},

		{"empty", "", true},
		{"starts with dot", ".hidden", true},
		{"starts with hyphen", "-bad", true},
		{"starts with number", "1widgets", true},
		{"has spaces", "my widgets", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestScaffoldProject_WritesConfigAndGoMod(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "my-widgets")

	if err := scaffoldProject(dir, "my-widgets", "github.com/user/my-widgets"); err != nil {
		t.Fatalf("scaffoldProject: %v", err)
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("failed to read go.mod: %v", err)
	}
	if got := string(gomod); !strings.Contains(got, "module github.com/user/my-widgets") {
		t.Errorf("go.mod should contain the module path, got:\n%s", got)
	}

	ext, err := os.ReadFile(filepath.Join(dir, "client-extension.yaml"))
	if err != nil {
		t.Fatalf("failed to read client-extension.yaml: %v", err)
	}
	if got := string(ext); !strings.Contains(got, "name: my-widgets") || !strings.Contains(got, "type: carousel") {
		t.Errorf("client-extension.yaml missing expected content:\n%s", got)
	}
}

func TestScaffoldProject_RejectsExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "my-widgets")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := scaffoldProject(dir, "my-widgets", "my-widgets"); err == nil {
		t.Fatal("expected error for existing directory, got nil")
	}
}

func TestDeriveModulePath_ExtendsEnclosingModule(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module example.com/parent\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(tmp, "widgets", "hero")
	got := deriveModulePath(dir, "hero")
	if got != "example.com/parent/widgets/hero" {
		t.Errorf("deriveModulePath = %q, want example.com/parent/widgets/hero", got)
	}
}

func TestDeriveModulePath_FallsBackToProjectName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "standalone")
	if got := deriveModulePath(dir, "standalone"); got != "standalone" {
		t.Errorf("deriveModulePath = %q, want standalone", got)
	}
}

func TestRunInit_RejectsDangerousDirectory(t *testing.T) {
	for _, dir := range []string{"/", ".", ".."} {
		if err := runInit([]string{dir}); err == nil {
			t.Errorf("expected error for dangerous directory %q, got nil", dir)
		}
	}
}

func TestRunInit_RejectsTilde(t *testing.T) {
	err := runInit([]string{"~/my-widgets"})
	if err == nil {
		t.Fatal("expected error for tilde path, got nil")
	}
	if !strings.Contains(err.Error(), "tilde") {
		t.Errorf("expected tilde-specific error, got: %v", err)
	}
}

func TestRunInit_RejectsInvalidModulePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-widgets")
	if err := runInit([]string{dir, "not a module path"}); err == nil {
		t.Fatal("expected error for invalid module path, got nil")
	}
}

func TestRunInit_RejectsEmptyModulePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-widgets")
	if err := runInit([]string{dir, ""}); err == nil {
		t.Fatal("expected error for empty module path, got nil")
	}
}

func TestRunInit_NoArgs(t *testing.T) {
	if err := runInit(nil); err == nil {
		t.Fatal("expected error for no args, got nil")
	}
}

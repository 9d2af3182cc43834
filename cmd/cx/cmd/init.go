package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a new widget project",
		Long: `Create a new client extension widget project in a new directory.

This command creates:
  - A new directory at the specified path
  - client-extension.yaml with a sample carousel widget
  - go.mod with the specified module path

The project name is derived from the directory basename. The module path
defaults to the project name; when the directory sits inside an existing
Go module, the enclosing module path is extended instead.

Examples:
  cx init my-widgets
  cx init my-widgets github.com/username/my-widgets
  cx init ./projects/my-widgets`,
		Usage: "cx init <directory> [module-path]",
		Run:   runInit,
	})
}

const goModTemplate = `module {{.ModulePath}}

go 1.24
`

const extensionTemplate = `name: {{.ProjectName}}
type: customElement
widgets:
  carousel:
    type: carousel
    autoplay: true
    intervalMs: 4000
    perspective: 900
    tilt: 20
`

// initTemplateData contains the data for init template substitution.
type initTemplateData struct {
	ProjectName string
	ModulePath  string
}

func runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: cx init <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by cx; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)
	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	var modulePath string
	if len(args) > 1 {
		modulePath = args[1]
		if modulePath == "" {
			return fmt.Errorf("module path cannot be empty")
		}
		if err := module.CheckPath(modulePath); err != nil {
			return fmt.Errorf("invalid module path %q: %w", modulePath, err)
		}
	} else {
		modulePath = deriveModulePath(dir, projectName)
	}

	if err := scaffoldProject(dir, projectName, modulePath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Project created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  cx preview .    # Preview the widgets locally\n")

	return nil
}

// deriveModulePath extends the enclosing Go module's path when the target
// directory sits inside one, and falls back to the bare project name.
func deriveModulePath(dir, projectName string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return projectName
	}

	parent := filepath.Dir(abs)
	for {
		data, err := os.ReadFile(filepath.Join(parent, "go.mod"))
		if err == nil {
			enclosing := modfile.ModulePath(data)
			if enclosing == "" {
				return projectName
			}
			rel, err := filepath.Rel(parent, abs)
			if err != nil || strings.HasPrefix(rel, "..") {
				return projectName
			}
			return enclosing + "/" + filepath.ToSlash(rel)
		}
		next := filepath.Dir(parent)
		if next == parent {
			return projectName
		}
		parent = next
	}
}

// scaffoldProject creates the project directory and writes the template
// files. It has no side effects beyond the filesystem, making it safe to
// call from tests.
func scaffoldProject(dir, projectName, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating new widget project: %s\n", projectName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := initTemplateData{
		ProjectName: projectName,
		ModulePath:  modulePath,
	}

	initFiles := []struct {
		content  string
		destName string
	}{
		{goModTemplate, "go.mod"},
		{extensionTemplate, "client-extension.yaml"},
	}

	for _, f := range initFiles {
		if err := writeInitTemplate(dir, f.content, f.destName, data); err != nil {
			safeRemoveAll(dir)
			return err
		}
		fmt.Printf("  Created %s\n", f.destName)
	}

	return nil
}

func writeInitTemplate(projectDir, content, destName string, data initTemplateData) error {
	tmpl, err := template.New(destName).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", destName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template for %s: %w", destName, err)
	}

	destPath := filepath.Join(projectDir, destName)
	if err := os.WriteFile(destPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destName, err)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths (e.g. /etc).
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is
// "/", on Windows this covers drive roots like "C:\" and the bare root "\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It silently no-ops for dangerous paths rather than
// returning an error, since it is called on cleanup paths where the
// original error should not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name (derived from the
// directory basename) starts with a letter and contains only letters,
// digits, underscores, and hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with a hyphen")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("project name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}

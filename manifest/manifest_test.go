package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quill-lang/quill/macro"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "quill.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "test-app"
namespace = "testapp"
version = "0.1.0"

[source]
dirs = ["src", "lib"]
entry = "main"

[cache]
path = "build/ast.db"

[[macro.parsers]]
location = "quill:number"
schema = "{min?: int, max?: int}"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Project.Name != "test-app" {
		t.Errorf("project name = %q, want test-app", m.Project.Name)
	}
	if m.Project.Namespace != "testapp" {
		t.Errorf("project namespace = %q, want testapp", m.Project.Namespace)
	}
	if len(m.Source.Dirs) != 2 {
		t.Errorf("source dirs count = %d, want 2", len(m.Source.Dirs))
	}
	if m.Source.Entry != "main" {
		t.Errorf("source entry = %q, want main", m.Source.Entry)
	}
	if len(m.Macro.Parsers) != 1 {
		t.Fatalf("macro parsers count = %d, want 1", len(m.Macro.Parsers))
	}
	if m.Macro.Parsers[0].Location != "quill:number" {
		t.Errorf("parser location = %q, want quill:number", m.Macro.Parsers[0].Location)
	}

	want := filepath.Join(m.Dir, "build", "ast.db")
	if m.CachePath() != want {
		t.Errorf("CachePath() = %q, want %q", m.CachePath(), want)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "bare"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Source.Dirs) != 1 || m.Source.Dirs[0] != "src" {
		t.Errorf("default source dirs = %v, want [src]", m.Source.Dirs)
	}
	if m.Cache.Path != filepath.Join(".quill-cache", "ast.db") {
		t.Errorf("default cache path = %q", m.Cache.Path)
	}
	paths := m.SourceDirPaths()
	if len(paths) != 1 || paths[0] != filepath.Join(m.Dir, "src") {
		t.Errorf("SourceDirPaths() = %v", paths)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of empty dir succeeded, want error")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[project`)
	if _, err := Load(dir); err == nil {
		t.Error("malformed manifest accepted")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[project]
name = "nested"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest")
	}
	if m.Project.Name != "nested" {
		t.Errorf("project name = %q, want nested", m.Project.Name)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m != nil {
		t.Errorf("FindAndLoad = %+v, want nil", m)
	}
}

func TestDeclareSchemas(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "schemas"

[[macro.parsers]]
location = "quill:number"
schema = "{min?: int, max?: int}"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.DeclareSchemas(macro.NewRegistry()); err != nil {
		t.Errorf("DeclareSchemas failed: %v", err)
	}
}

func TestDeclareSchemasBadLocation(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "schemas"

[[macro.parsers]]
location = "NOT VALID"
schema = "{}"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.DeclareSchemas(macro.NewRegistry()); err == nil {
		t.Error("invalid parser location accepted")
	}
}

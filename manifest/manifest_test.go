package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with an apitree.toml
	dir := t.TempDir()
	tomlContent := `
[input]
path = "filtered_api.json"

[output]
dir = "../../hi_scripting/scripting/api"
namespace = "XmlApi"
var-name = "api_blob"
header = "XmlApiData.h"
source = "XmlApiData.cpp"

[tree]
root = "Scripting"
method-node = "fn"

[report]
call-scope-marker = "scope"
deprecated-marker = "obsolete"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Input.Path != "filtered_api.json" {
		t.Errorf("input path = %q, want filtered_api.json", m.Input.Path)
	}
	if m.Output.Namespace != "XmlApi" {
		t.Errorf("namespace = %q, want XmlApi", m.Output.Namespace)
	}
	if m.Output.VarName != "api_blob" {
		t.Errorf("var-name = %q, want api_blob", m.Output.VarName)
	}
	if m.Output.Header != "XmlApiData.h" || m.Output.Source != "XmlApiData.cpp" {
		t.Errorf("header/source = %q/%q", m.Output.Header, m.Output.Source)
	}
	if m.Tree.Root != "Scripting" || m.Tree.MethodNode != "fn" {
		t.Errorf("tree = %+v", m.Tree)
	}
	if m.Report.CallScopeMarker != "scope" || m.Report.DeprecatedMarker != "obsolete" {
		t.Errorf("report = %+v", m.Report)
	}
	if got, want := m.InputPath(), filepath.Join(m.Dir, "filtered_api.json"); got != want {
		t.Errorf("InputPath = %q, want %q", got, want)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[output]
namespace = "XmlApi"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Output.VarName != "apivaluetree_dat" {
		t.Errorf("default var-name = %q", m.Output.VarName)
	}
	if m.Output.Header != "XmlApi.h" || m.Output.Source != "XmlApi.cpp" {
		t.Errorf("default header/source = %q/%q", m.Output.Header, m.Output.Source)
	}
	if m.Tree.Root != "Api" || m.Tree.MethodNode != "method" {
		t.Errorf("default tree = %+v", m.Tree)
	}
	if m.Report.CallScopeMarker != "callScope" || m.Report.DeprecatedMarker != "deprecated" {
		t.Errorf("default report = %+v", m.Report)
	}
}

func TestLoadManifestParseError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("[output\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestFindAndLoad(t *testing.T) {
	// Create nested directory structure
	dir := t.TempDir()
	subDir := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	tomlContent := `[output]
namespace = "Found"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	// Should find manifest when starting from a deep subdirectory
	m, err := FindAndLoad(subDir)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if m.Output.Namespace != "Found" {
		t.Errorf("namespace = %q, want Found", m.Output.Namespace)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	m, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no apitree.toml exists")
	}
}

func TestResolvePaths(t *testing.T) {
	m := &Manifest{
		Dir:    "/app",
		Input:  Input{Path: "api.json"},
		Output: Output{Dir: "/abs/out"},
	}

	if got := m.InputPath(); got != "/app/api.json" {
		t.Errorf("InputPath = %q, want /app/api.json", got)
	}
	if got := m.OutputDir(); got != "/abs/out" {
		t.Errorf("OutputDir = %q, want /abs/out", got)
	}

	m.Output.Dir = ""
	if got := m.OutputDir(); got != "" {
		t.Errorf("empty OutputDir = %q", got)
	}
}

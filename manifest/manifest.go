// Package manifest handles apitree.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/christoph-hart/hise-api-generator/apitree"
	"github.com/christoph-hart/hise-api-generator/emit"
)

// FileName is the manifest file looked up by Load and FindAndLoad.
const FileName = "apitree.toml"

// Manifest represents an apitree.toml project configuration.
type Manifest struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Tree   Tree   `toml:"tree"`
	Report Report `toml:"report"`

	// Dir is the directory containing the apitree.toml file (set at load time).
	Dir string `toml:"-"`
}

// Input configures the filtered API description to read.
type Input struct {
	Path string `toml:"path"`
}

// Output configures the generated header/source pair.
type Output struct {
	Dir       string `toml:"dir"`
	Namespace string `toml:"namespace"`
	VarName   string `toml:"var-name"`
	Header    string `toml:"header"`
	Source    string `toml:"source"`
}

// Tree configures node naming.
type Tree struct {
	Root       string `toml:"root"`
	MethodNode string `toml:"method-node"`
}

// Report configures which method properties the summary counts.
type Report struct {
	CallScopeMarker  string `toml:"call-scope-marker"`
	DeprecatedMarker string `toml:"deprecated-marker"`
}

// Load parses an apitree.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	return &m, nil
}

// FindAndLoad walks up from startDir to find an apitree.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) applyDefaults() {
	if m.Output.VarName == "" {
		m.Output.VarName = emit.DefaultVarName
	}
	if m.Output.Namespace != "" {
		if m.Output.Header == "" {
			m.Output.Header = m.Output.Namespace + ".h"
		}
		if m.Output.Source == "" {
			m.Output.Source = m.Output.Namespace + ".cpp"
		}
	}
	if m.Tree.Root == "" {
		m.Tree.Root = apitree.DefaultRootName
	}
	if m.Tree.MethodNode == "" {
		m.Tree.MethodNode = apitree.DefaultMethodNodeName
	}
	if m.Report.CallScopeMarker == "" {
		m.Report.CallScopeMarker = apitree.DefaultMarkers.CallScope
	}
	if m.Report.DeprecatedMarker == "" {
		m.Report.DeprecatedMarker = apitree.DefaultMarkers.Deprecated
	}
}

// InputPath returns the input path, resolved against the manifest directory.
func (m *Manifest) InputPath() string {
	return m.resolve(m.Input.Path)
}

// OutputDir returns the output directory, resolved against the manifest directory.
func (m *Manifest) OutputDir() string {
	return m.resolve(m.Output.Dir)
}

func (m *Manifest) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir, p)
}

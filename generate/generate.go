// Package generate runs the full pipeline: read the filtered API JSON,
// build the value tree, encode it, and write the embeddable C++ sources.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/christoph-hart/hise-api-generator/apijson"
	"github.com/christoph-hart/hise-api-generator/apitree"
	"github.com/christoph-hart/hise-api-generator/emit"
	"github.com/christoph-hart/hise-api-generator/manifest"
	"github.com/christoph-hart/hise-api-generator/valuetree"
)

// logger is resolved per call: the backend is registered by the binary's
// imports, after this package is initialized.
func logger() commonlog.Logger {
	return commonlog.GetLogger("apitree.generate")
}

var (
	// ErrInputNotObject is returned when the input cannot be read or does
	// not parse to a JSON object.
	ErrInputNotObject = errors.New("input is not a JSON object")

	// ErrOutputDir is returned when the output directory does not exist.
	ErrOutputDir = errors.New("output directory not found")

	// ErrStale is returned in check mode when generated files on disk do
	// not match what would be written.
	ErrStale = errors.New("generated sources are out of date")
)

// Options configures a pipeline run.
type Options struct {
	InputPath string
	OutputDir string
	Namespace string
	VarName   string

	// HeaderName and SourceName default to <Namespace>.h and <Namespace>.cpp.
	HeaderName string
	SourceName string

	RootName       string
	MethodNodeName string
	Markers        apitree.Markers

	// Check compares the rendered sources against the files on disk
	// instead of writing them.
	Check bool
}

// FromManifest builds Options from a loaded manifest.
func FromManifest(m *manifest.Manifest) Options {
	return Options{
		InputPath:      m.InputPath(),
		OutputDir:      m.OutputDir(),
		Namespace:      m.Output.Namespace,
		VarName:        m.Output.VarName,
		HeaderName:     m.Output.Header,
		SourceName:     m.Output.Source,
		RootName:       m.Tree.Root,
		MethodNodeName: m.Tree.MethodNode,
		Markers: apitree.Markers{
			CallScope:  m.Report.CallScopeMarker,
			Deprecated: m.Report.DeprecatedMarker,
		},
	}
}

func (o *Options) applyDefaults() {
	if o.VarName == "" {
		o.VarName = emit.DefaultVarName
	}
	if o.HeaderName == "" {
		o.HeaderName = o.Namespace + ".h"
	}
	if o.SourceName == "" {
		o.SourceName = o.Namespace + ".cpp"
	}
	if o.Markers == (apitree.Markers{}) {
		o.Markers = apitree.DefaultMarkers
	}
}

func (o *Options) params() emit.Params {
	return emit.Params{Namespace: o.Namespace, VarName: o.VarName, HeaderName: o.HeaderName}
}

// Result describes a completed run.
type Result struct {
	Stats      apitree.Stats
	Size       int
	Digest     string
	HeaderPath string
	SourcePath string

	// Written lists the files whose content changed on disk. It is always
	// empty in check mode.
	Written []string
}

// Run executes the pipeline described by opts.
func Run(opts Options) (*Result, error) {
	opts.applyDefaults()

	params := opts.params()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !emit.IsFileName(opts.SourceName) {
		return nil, fmt.Errorf("source name %q must be a bare file name", opts.SourceName)
	}

	if info, err := os.Stat(opts.OutputDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrOutputDir, opts.OutputDir)
	}

	root, err := apijson.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotObject, err)
	}
	if _, ok := apijson.AsObject(root); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInputNotObject, opts.InputPath)
	}

	tree := apitree.Build(root,
		apitree.WithRootName(opts.RootName),
		apitree.WithMethodNodeName(opts.MethodNodeName))
	stats := apitree.Summarize(tree, opts.Markers)
	logger().Debugf("built tree: %d classes, %d methods", stats.Classes, stats.Methods)

	data := valuetree.Encode(tree)
	logger().Debugf("encoded %d bytes", len(data))

	files := emit.Render(params, data)

	res := &Result{
		Stats:      stats,
		Size:       len(data),
		Digest:     valuetree.DigestHex(data),
		HeaderPath: filepath.Join(opts.OutputDir, opts.HeaderName),
		SourcePath: filepath.Join(opts.OutputDir, opts.SourceName),
	}

	outputs := []struct {
		path    string
		content string
	}{
		{res.HeaderPath, files.Header},
		{res.SourcePath, files.Source},
	}

	if opts.Check {
		var stale []error
		for _, out := range outputs {
			same, err := matches(out.path, out.content)
			if err != nil {
				return nil, err
			}
			if !same {
				stale = append(stale, fmt.Errorf("%w: %s", ErrStale, out.path))
			}
		}
		if len(stale) > 0 {
			return res, errors.Join(stale...)
		}
		return res, nil
	}

	for _, out := range outputs {
		same, err := matches(out.path, out.content)
		if err != nil {
			return nil, err
		}
		if same {
			logger().Debugf("unchanged %s", out.path)
			continue
		}
		if err := writeFileAtomic(out.path, []byte(out.content)); err != nil {
			return nil, err
		}
		logger().Infof("wrote %s", out.path)
		res.Written = append(res.Written, out.path)
	}

	return res, nil
}

// matches reports whether the file at path holds exactly content. A missing
// file does not match.
func matches(path, content string) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return bytes.Equal(existing, []byte(content)), nil
}

// writeFileAtomic replaces path via a temp file in the same directory.
// Readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("cannot create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("cannot chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace %s: %w", path, err)
	}
	return nil
}

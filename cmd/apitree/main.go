// apitree converts the filtered scripting API JSON into a binary value tree
// and writes it as a C++ header/source pair for embedding.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	"github.com/christoph-hart/hise-api-generator/generate"
	"github.com/christoph-hart/hise-api-generator/manifest"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	config  string
	varName string
	root    string
	check   bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var f cliFlags

	fs := pflag.NewFlagSet("apitree", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.config, "config", "c", "", "Path to apitree.toml or its directory (default: search upward from .)")
	fs.StringVar(&f.varName, "var-name", "", "Name of the exported byte-array variable")
	fs.StringVar(&f.root, "root", "", "Name of the root tree node")
	fs.BoolVar(&f.check, "check", false, "Verify generated sources are up to date without writing")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: apitree [options] <input.json> <output_dir> <namespace>\n")
		fmt.Fprintf(stderr, "       apitree [options]            # settings from apitree.toml\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExample:\n")
		fmt.Fprintf(stderr, "  apitree filtered_api.json \"../../hi_scripting/scripting/api\" XmlApi\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fs.Usage()
		return 1
	}

	if f.verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}
	log := commonlog.GetLogger("apitree.cli")

	opts, err := resolveOptions(f, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		return 1
	}
	opts.Check = f.check
	log.Debugf("input %s, output %s, namespace %s", opts.InputPath, opts.OutputDir, opts.Namespace)

	res, err := generate.Run(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	printSummary(stdout, res, f.check)
	return 0
}

var errUsage = errors.New("expected <input.json> <output_dir> <namespace>")

// resolveOptions merges positional arguments, flags and the manifest.
// Positional arguments win over the manifest; flags win over both.
func resolveOptions(f cliFlags, positional []string) (generate.Options, error) {
	var opts generate.Options

	switch len(positional) {
	case 0:
		m, err := loadManifest(f.config)
		if err != nil {
			return opts, err
		}
		if m == nil {
			return opts, fmt.Errorf("no %s found: %w", manifest.FileName, errUsage)
		}
		opts = generate.FromManifest(m)
		if opts.InputPath == "" || opts.OutputDir == "" || opts.Namespace == "" {
			return opts, fmt.Errorf("%s must set input.path, output.dir and output.namespace", filepath.Join(m.Dir, manifest.FileName))
		}

	case 3:
		if f.config != "" {
			m, err := loadManifest(f.config)
			if err != nil {
				return opts, err
			}
			if m != nil {
				opts = generate.FromManifest(m)
				// The manifest's file names follow its own namespace.
				opts.HeaderName, opts.SourceName = "", ""
			}
		}
		opts.InputPath = positional[0]
		opts.OutputDir = positional[1]
		opts.Namespace = positional[2]

	default:
		return opts, errUsage
	}

	if f.varName != "" {
		opts.VarName = f.varName
	}
	if f.root != "" {
		opts.RootName = f.root
	}
	return opts, nil
}

// loadManifest loads from an explicit file or directory, or searches upward
// from the working directory when path is empty.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.FindAndLoad(".")
	}
	if filepath.Base(path) == manifest.FileName {
		path = filepath.Dir(path)
	}
	return manifest.Load(path)
}

func printSummary(w io.Writer, res *generate.Result, check bool) {
	if check {
		fmt.Fprintln(w, "ApiValueTreeBuilder check passed:")
	} else {
		fmt.Fprintln(w, "ApiValueTreeBuilder complete:")
	}
	fmt.Fprintf(w, "  Classes: %d\n", res.Stats.Classes)
	fmt.Fprintf(w, "  Methods: %d\n", res.Stats.Methods)
	fmt.Fprintf(w, "  With callScope: %d\n", res.Stats.CallScope)
	fmt.Fprintf(w, "  Deprecated: %d\n", res.Stats.Deprecated)
	fmt.Fprintf(w, "  Binary size: %d bytes\n", res.Size)
	fmt.Fprintf(w, "  Digest: %s\n", res.Digest)
	fmt.Fprintf(w, "  Header: %s\n", res.HeaderPath)
	fmt.Fprintf(w, "  Source: %s\n", res.SourcePath)
}

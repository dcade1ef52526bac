// Package emit renders a byte buffer as a C++ header/source pair that
// embeds the bytes as a static array.
package emit

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	// ValuesPerLine is the number of array entries per source line.
	ValuesPerLine = 40

	// DefaultVarName is the variable the generated sources export.
	DefaultVarName = "apivaluetree_dat"

	banner    = "/* (Auto-generated binary data file). */"
	arrayName = "temp1"
)

// Params names the generated declarations.
type Params struct {
	Namespace  string
	VarName    string
	HeaderName string // file name the source #includes
}

// Files holds the rendered documents.
type Files struct {
	Header string
	Source string
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks that the names can be used in C++ source.
func (p Params) Validate() error {
	if !identRe.MatchString(p.Namespace) {
		return fmt.Errorf("namespace %q is not a valid identifier", p.Namespace)
	}
	if !identRe.MatchString(p.VarName) {
		return fmt.Errorf("variable name %q is not a valid identifier", p.VarName)
	}
	if p.HeaderName == "" || strings.ContainsAny(p.HeaderName, "\"\n") {
		return fmt.Errorf("header name %q cannot be included", p.HeaderName)
	}
	if !IsFileName(p.HeaderName) {
		return fmt.Errorf("header name %q must be a bare file name", p.HeaderName)
	}
	return nil
}

// IsFileName reports whether name is a single path element, so joining it
// onto an output directory cannot leave that directory.
func IsFileName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		filepath.Base(name) == name && !strings.ContainsAny(name, `/\\`)
}

// Guard returns the include guard for a namespace.
func Guard(namespace string) string {
	return "BINARY_" + strings.ToUpper(namespace) + "_H"
}

// Render produces both documents for data.
func Render(p Params, data []byte) Files {
	return Files{
		Header: Header(p, len(data)),
		Source: Source(p, data),
	}
}

// Header declares the exported pointer and its byte count.
func Header(p Params, size int) string {
	guard := Guard(p.Namespace)

	var sb strings.Builder
	sb.WriteString(banner + "\n\n")
	fmt.Fprintf(&sb, "#ifndef %s\n", guard)
	fmt.Fprintf(&sb, "#define %s\n\n", guard)
	fmt.Fprintf(&sb, "namespace %s\n{\n", p.Namespace)
	fmt.Fprintf(&sb, "    extern const char*  %s;\n", p.VarName)
	fmt.Fprintf(&sb, "    const int           %sSize = %d;\n", p.VarName, size)
	sb.WriteString("}\n\n")
	sb.WriteString("#endif\n")
	return sb.String()
}

// Source defines a file-local array holding data and binds the namespaced
// pointer to it.
func Source(p Params, data []byte) string {
	var sb strings.Builder
	// Each value is at most "255," plus line breaks.
	sb.Grow(len(data)*4 + len(data)/ValuesPerLine*4 + 256)

	sb.WriteString(banner + "\n\n")
	fmt.Fprintf(&sb, "#include \"%s\"\n\n", p.HeaderName)
	fmt.Fprintf(&sb, "static const unsigned char %s[] = {", arrayName)

	var num []byte
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(',')
		}
		if i%ValuesPerLine == 0 {
			sb.WriteString("\n  ")
		}
		num = strconv.AppendUint(num[:0], uint64(b), 10)
		sb.Write(num)
	}

	sb.WriteString("};\n")
	fmt.Fprintf(&sb, "const char* %s::%s = (const char*) %s;\n", p.Namespace, p.VarName, arrayName)
	return sb.String()
}

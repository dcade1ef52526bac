package apitree

import "github.com/christoph-hart/hise-api-generator/valuetree"

// Markers names the method properties counted by Summarize.
type Markers struct {
	CallScope  string
	Deprecated string
}

// DefaultMarkers are the property names the scripting API filter emits.
var DefaultMarkers = Markers{
	CallScope:  "callScope",
	Deprecated: "deprecated",
}

// Stats is the operator-facing summary of a built tree.
type Stats struct {
	Classes    int
	Methods    int
	CallScope  int
	Deprecated int
}

// Summarize counts classes, methods, and methods carrying each marker.
// Presence of the marker property counts, whatever its value.
func Summarize(tree *valuetree.Tree, markers Markers) Stats {
	var s Stats
	s.Classes = tree.NumChildren()
	for _, class := range tree.Children {
		for _, method := range class.Children {
			s.Methods++
			if markers.CallScope != "" && method.HasProperty(markers.CallScope) {
				s.CallScope++
			}
			if markers.Deprecated != "" && method.HasProperty(markers.Deprecated) {
				s.Deprecated++
			}
		}
	}
	return s
}

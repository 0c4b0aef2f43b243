package metadata

import (
	"encoding/json"

	"github.com/thorn-jmh/errorst"
)

// Definitions hold the externally defined option trees ("extra objects")
// shared between widgets, keyed by complex-type name.
type Definitions map[string]*Option

// Source is the root of the widget metadata document.
type Source struct {
	Widgets      map[string]*Widget `json:"Widgets"`
	ExtraObjects Definitions        `json:"ExtraObjects,omitempty"`
}

// Widget describes one top-level configurable UI unit.
type Widget struct {
	Module               string             `json:"Module,omitempty"`
	IsTranscludedContent bool               `json:"IsTranscludedContent,omitempty"`
	IsExtensionComponent bool               `json:"IsExtensionComponent,omitempty"`
	Options              map[string]*Option `json:"Options,omitempty"`
}

// ComplexTypeList is a list of complex-type names.
// After parsing, we use a slice of strings to represent the references.
type ComplexTypeList []string

// Option is a node of the source option tree.
//
// NOTE: option names are unique within a node's Options mapping by
// construction of the exporter; order is not guaranteed.
type Option struct {
	IsEvent      bool               `json:"IsEvent,omitempty"`
	IsCollection bool               `json:"IsCollection,omitempty"`
	IsDataSource bool               `json:"IsDataSource,omitempty"`
	IsTemplate   bool               `json:"IsTemplate,omitempty"`
	SingularName string             `json:"SingularName,omitempty"`
	Options      map[string]*Option `json:"Options,omitempty"`
	ComplexTypes ComplexTypeList    `json:"ComplexTypes,omitempty"`
}

// OptionKind tags how an option node must be treated by the resolver.
type OptionKind string

const (
	// KindLeaf is a plain property without nested structure.
	KindLeaf OptionKind = "leaf"
	// KindInlineOptions declares its nested options inline.
	KindInlineOptions OptionKind = "inline"
	// KindComplexTypeRef references exactly one extra-object definition.
	KindComplexTypeRef OptionKind = "complexType"
)

// Kind decides the node's variant once. A complex-type reference is only
// followed when the node names exactly one candidate type; zero or multiple
// candidates degrade to a leaf.
func (o *Option) Kind() OptionKind {
	switch {
	case len(o.Options) > 0:
		return KindInlineOptions
	case len(o.ComplexTypes) == 1:
		return KindComplexTypeRef
	default:
		return KindLeaf
	}
}

// ComplexType returns the single usable type reference, or "" when the node
// is not a KindComplexTypeRef.
func (o *Option) ComplexType() string {
	if o.Kind() != KindComplexTypeRef {
		return ""
	}
	return o.ComplexTypes[0]
}

// >>>>>>>>>>>>>>>>>>>> impl UnmarshalJSON >>>>>>>>>>>>>>>>>>>>>>>

// UnmarshalJSON accepts both a list of type names and a bare string;
// legacy exporters wrote `"ComplexTypes": "GridBaseColumn"`.
func (t *ComplexTypeList) UnmarshalJSON(b []byte) error {
	// if the value is a list, unmarshal it as a list of strings.
	if len(b) > 0 && b[0] == '[' {
		var s []string
		if err := json.Unmarshal(b, &s); err != nil {
			return errorst.NewError("failed to unmarshal complex type list: %v", err)
		}
		*t = s
		return nil
	}

	// else unmarshal it as a single string.
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errorst.NewError("failed to unmarshal complex type: %v", err)
	}
	if s != "" {
		*t = []string{s}
	} else {
		*t = nil
	}

	return nil
}

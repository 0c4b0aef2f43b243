package compgen

// >>>>>>>>>>>> this describes the result of descriptor generation >>>>>>>>>>>>>>>

// Event is an emit/subscribe pair on a widget descriptor.
type Event struct {
	Emit      string `json:"emit"`      // output binding name
	Subscribe string `json:"subscribe"` // source event name
}

// Property is a bindable leaf option on a widget descriptor.
type Property struct {
	Name         string `json:"name"`
	Type         string `json:"type"` // placeholder, refined by downstream emitters
	IsCollection bool   `json:"isCollection,omitempty"`
}

// NestedRef points a widget at one of the nested components reachable from
// its options.
type NestedRef struct {
	Path         string `json:"path"`
	PropertyName string `json:"propertyName"` // option the component was discovered under
	ClassName    string `json:"className"`
	IsCollection bool   `json:"isCollection,omitempty"`
	HasTemplate  bool   `json:"hasTemplate,omitempty"`
}

// WidgetDescriptor is the top-level output document, one per widget with a
// defined module.
type WidgetDescriptor struct {
	ClassName            string      `json:"className"`
	WidgetName           string      `json:"widgetName"`
	Selector             string      `json:"selector"`
	Module               string      `json:"module"`
	IsTranscludedContent bool        `json:"isTranscludedContent"`
	IsExtension          bool        `json:"isExtension"`
	IsEditor             bool        `json:"isEditor"`
	Events               []Event     `json:"events"`
	Properties           []Property  `json:"properties"`
	NestedComponents     []NestedRef `json:"nestedComponents"`
}

// NestedDescriptor describes one nested component. Many instances exist
// before normalization; the same class may be reached from several widgets.
type NestedDescriptor struct {
	ClassName  string `json:"className"`
	Selector   string `json:"selector"`
	OptionName string `json:"optionName"` // owning option
	Path       string `json:"path"`       // output location, relative to the nested root

	IsCollection bool `json:"isCollection,omitempty"`
	HasTemplate  bool `json:"hasTemplate,omitempty"`

	Properties []string `json:"properties,omitempty"`

	// inheritance, set when the component's shape came from an extra object
	BaseClass          string `json:"baseClass,omitempty"`
	BasePath           string `json:"basePath,omitempty"`
	HasSimpleBaseClass bool   `json:"hasSimpleBaseClass,omitempty"`
}

// BaseDescriptor is a synthesized parent descriptor, one per distinct
// baseClass seen on the nested descriptors.
type BaseDescriptor struct {
	ClassName  string   `json:"className"`
	Path       string   `json:"path"`
	Properties []string `json:"properties"`
}

// Generic fallback bases assigned to descriptors without a resolved
// baseClass, chosen by the descriptor's own collection flag.
const (
	SimpleBaseClass           = "NestedOption"
	SimpleCollectionBaseClass = "CollectionNestedOption"
)

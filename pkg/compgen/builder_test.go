package compgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxgen/pkg/metadata"
)

func buildSingle(t *testing.T, name string, w *metadata.Widget) (WidgetDescriptor, []NestedDescriptor) {
	t.Helper()
	widgets, nested := BuildWidgets(&metadata.Source{
		Widgets: map[string]*metadata.Widget{name: w},
	})
	require.Len(t, widgets, 1)
	return widgets[0], nested
}

func TestBuildWidgets_BareWidget(t *testing.T) {
	d, nested := buildSingle(t, "dxTextBox", &metadata.Widget{Module: "textBox"})

	assert.Equal(t, "TextBox", d.ClassName)
	assert.Equal(t, "dxTextBox", d.WidgetName)
	assert.Equal(t, "dx-text-box", d.Selector)
	assert.Equal(t, "textBox", d.Module)
	assert.False(t, d.IsEditor)
	assert.Empty(t, d.Events)
	assert.Empty(t, d.Properties)
	assert.Empty(t, d.NestedComponents)
	assert.Empty(t, nested)
}

func TestBuildWidgets_SkipsWidgetsWithoutModule(t *testing.T) {
	widgets, _ := BuildWidgets(&metadata.Source{
		Widgets: map[string]*metadata.Widget{
			"dxTextBox": {Module: "textBox"},
			"dxInternal": {Options: map[string]*metadata.Option{
				"value": {},
			}},
		},
	})

	require.Len(t, widgets, 1)
	assert.Equal(t, "TextBox", widgets[0].ClassName)
}

func TestBuildWidgets_EventOption(t *testing.T) {
	d, _ := buildSingle(t, "dxButton", &metadata.Widget{
		Module: "button",
		Options: map[string]*metadata.Option{
			"onClick": {IsEvent: true},
		},
	})

	require.Len(t, d.Events, 1)
	assert.Equal(t, Event{Emit: "onClick", Subscribe: "click"}, d.Events[0])
	assert.Empty(t, d.Properties, "an event option must never double as a property")
}

func TestBuildWidgets_PropertyAndChangeEvent(t *testing.T) {
	d, _ := buildSingle(t, "dxTextBox", &metadata.Widget{
		Module: "textBox",
		Options: map[string]*metadata.Option{
			"value": {},
		},
	})

	require.Len(t, d.Properties, 1)
	assert.Equal(t, Property{Name: "value", Type: "any"}, d.Properties[0])

	require.Len(t, d.Events, 1)
	assert.Equal(t, Event{Emit: "valueChanged", Subscribe: "valueChanged"}, d.Events[0])

	assert.True(t, d.IsEditor, "a widget exposing 'value' is an editor")
}

func TestBuildWidgets_DataSourceIsCollectionProperty(t *testing.T) {
	d, _ := buildSingle(t, "dxList", &metadata.Widget{
		Module: "list",
		Options: map[string]*metadata.Option{
			"dataSource": {IsDataSource: true},
		},
	})

	require.Len(t, d.Properties, 1)
	assert.True(t, d.Properties[0].IsCollection)
}

func TestBuildWidgets_WidgetFlags(t *testing.T) {
	d, _ := buildSingle(t, "dxValidator", &metadata.Widget{
		Module:               "validator",
		IsTranscludedContent: true,
		IsExtensionComponent: true,
	})

	assert.True(t, d.IsTranscludedContent)
	assert.True(t, d.IsExtension)
}

func TestBuildWidgets_NestedComponents(t *testing.T) {
	d, nested := buildSingle(t, "dxList", &metadata.Widget{
		Module: "list",
		Options: map[string]*metadata.Option{
			"items": {
				IsCollection: true,
				SingularName: "item",
				Options:      map[string]*metadata.Option{"text": {}},
			},
		},
	})

	require.Len(t, nested, 1)
	assert.Equal(t, "ItemsCollection", nested[0].ClassName)

	require.Len(t, d.NestedComponents, 1)
	ref := d.NestedComponents[0]
	assert.Equal(t, "ItemsCollection", ref.ClassName)
	assert.Equal(t, "items", ref.PropertyName)
	assert.Equal(t, "items-collection", ref.Path)
	assert.True(t, ref.IsCollection)

	// the collection option itself is still a property of the widget
	require.Len(t, d.Properties, 1)
	assert.True(t, d.Properties[0].IsCollection)
}

func TestBuildWidgets_DirectRefsDeduplicated(t *testing.T) {
	withFont := func() *metadata.Option {
		return &metadata.Option{
			Options: map[string]*metadata.Option{
				"font": {Options: map[string]*metadata.Option{"size": {}}},
			},
		}
	}
	widgets, nested := BuildWidgets(&metadata.Source{
		Widgets: map[string]*metadata.Widget{
			"dxChart": {
				Module: "chart",
				Options: map[string]*metadata.Option{
					"legend": withFont(),
					"title":  withFont(),
				},
			},
		},
	})

	require.Len(t, widgets, 1)
	// both branches expand, producing two Font descriptors for downstream merge
	assert.Len(t, nested, 4)

	// but the widget references each class once, first occurrence wins
	var classes []string
	for _, ref := range widgets[0].NestedComponents {
		classes = append(classes, ref.ClassName)
	}
	assert.Equal(t, []string{"Legend", "Font", "Title"}, classes)
}

func TestBuildWidgets_GlobalNestedListKeepsDuplicates(t *testing.T) {
	item := func() *metadata.Option {
		return &metadata.Option{
			IsCollection: true,
			SingularName: "item",
			Options:      map[string]*metadata.Option{"text": {}},
		}
	}
	_, nested := BuildWidgets(&metadata.Source{
		Widgets: map[string]*metadata.Widget{
			"dxList": {Module: "list", Options: map[string]*metadata.Option{"items": item()}},
			"dxMenu": {Module: "menu", Options: map[string]*metadata.Option{"items": item()}},
		},
	})

	// deduplication is the normalizer's job, not the builder's
	assert.Len(t, nested, 2)
}

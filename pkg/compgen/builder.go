package compgen

import (
	"sort"
	"strings"

	linq "github.com/ahmetb/go-linq/v3"

	"dxgen/pkg/metadata"
)

// BuildWidgets assembles one descriptor per generatable widget and the flat
// list of every nested component discovered along the way. Widgets without a
// module reference are skipped; nothing downstream can be generated for them.
func BuildWidgets(src *metadata.Source) ([]WidgetDescriptor, []NestedDescriptor) {
	reg := metadata.NewRegistry(src.ExtraObjects)

	names := make([]string, 0, len(src.Widgets))
	for n := range src.Widgets {
		names = append(names, n)
	}
	sort.Strings(names)

	widgets := make([]WidgetDescriptor, 0, len(names))
	var all []NestedDescriptor
	for _, name := range names {
		w := src.Widgets[name]
		if w.Module == "" {
			continue
		}
		desc, nested := buildWidget(reg, name, w)
		widgets = append(widgets, desc)
		all = append(all, nested...)
	}
	return widgets, all
}

func buildWidget(reg *metadata.Registry, widgetName string, w *metadata.Widget) (WidgetDescriptor, []NestedDescriptor) {
	d := WidgetDescriptor{
		ClassName:            ClassStyle(strings.TrimPrefix(widgetName, "dx")),
		WidgetName:           widgetName,
		Selector:             SelectorStyle(widgetName),
		Module:               w.Module,
		IsTranscludedContent: w.IsTranscludedContent,
		IsExtension:          w.IsExtensionComponent,
		Events:               []Event{},
		Properties:           []Property{},
		NestedComponents:     []NestedRef{},
	}
	_, d.IsEditor = w.Options["value"]

	var all []NestedDescriptor
	for _, optName := range sortedNames(w.Options) {
		opt := w.Options[optName]

		if opt.IsEvent {
			d.Events = append(d.Events, Event{
				Emit:      optName,
				Subscribe: subscribeName(optName),
			})
			continue
		}

		d.Properties = append(d.Properties, Property{
			Name:         optName,
			Type:         "any",
			IsCollection: opt.IsCollection || opt.IsDataSource,
		})
		// every property gets a change notification, declared or not
		d.Events = append(d.Events, changeEvent(optName))

		all = append(all, Resolve(reg, Context{State{OptionName: optName}}, opt)...)
	}

	d.NestedComponents = directRefs(all)
	return d, all
}

// subscribeName strips the conventional "on" prefix of an event option and
// lower-cases the remainder's first letter, e.g. "onValueChanged" ->
// "valueChanged".
func subscribeName(optionName string) string {
	return LowerFirst(strings.TrimPrefix(optionName, "on"))
}

func changeEvent(optionName string) Event {
	name := optionName + "Changed"
	return Event{Emit: name, Subscribe: name}
}

// directRefs projects the descriptors reachable from a widget's options into
// the widget's nested-component list, first occurrence of each class wins.
func directRefs(descs []NestedDescriptor) []NestedRef {
	refs := []NestedRef{}
	linq.From(descs).
		DistinctByT(func(d NestedDescriptor) string { return d.ClassName }).
		SelectT(func(d NestedDescriptor) NestedRef {
			return NestedRef{
				Path:         d.Path,
				PropertyName: d.OptionName,
				ClassName:    d.ClassName,
				IsCollection: d.IsCollection,
				HasTemplate:  d.HasTemplate,
			}
		}).
		ToSlice(&refs)
	return refs
}

package compgen

import (
	"log"
	"sort"

	"dxgen/pkg/metadata"
)

// Resolve decides whether an option is a plain leaf, an inline nested
// component or a reference into the extra-object registry, and expands the
// nested component descriptors rooted at it. A nil result means the option
// contributes nothing to the nested-component graph.
//
// The returned slice is freshly built on every call; callers concatenate at
// the call site instead of sharing accumulators.
func Resolve(reg *metadata.Registry, ctx Context, opt *metadata.Option) []NestedDescriptor {
	switch opt.Kind() {
	case metadata.KindInlineOptions:
		return expandOptions(reg, ctx, opt, opt.Options)

	case metadata.KindComplexTypeRef:
		typeName := opt.ComplexType()

		// re-entering a type already on this path would expand forever
		if ctx.Entered(typeName) {
			return nil
		}

		base, ok := reg.Lookup(typeName)
		if !ok {
			log.Printf("Warning: option '%s' references unknown complex type '%s', skipping", ctx.OptionName, typeName)
			return nil
		}

		descs := expandOptions(reg, ctx.Enter(typeName), opt, base.Options)
		if len(descs) > 0 {
			prefix := "Dxo"
			if opt.IsCollection {
				prefix = "Dxc"
			}
			descs[0].BaseClass = prefix + typeName
			descs[0].BasePath = PathStyle(typeName)
		}
		return descs

	default:
		return nil
	}
}

// expandOptions builds the descriptor for one option level and recursively
// resolves every sub-option. The level's own descriptor always precedes the
// descriptors of its descendants.
func expandOptions(reg *metadata.Registry, ctx Context, owner *metadata.Option, opts map[string]*metadata.Option) []NestedDescriptor {
	if len(opts) == 0 {
		return nil
	}

	name := componentName(ctx.OptionName, owner)
	subNames := sortedNames(opts)

	// first: the descriptor for this level
	level := NestedDescriptor{
		ClassName:    ClassStyle(name),
		Selector:     SelectorStyle(name),
		OptionName:   ctx.OptionName,
		Path:         PathStyle(name),
		IsCollection: owner.IsCollection,
		Properties:   subNames,
	}
	for _, n := range subNames {
		if n == "template" && opts[n].IsTemplate {
			level.HasTemplate = true
		}
	}

	// second: the descendants, parent first
	out := []NestedDescriptor{level}
	for _, n := range subNames {
		sub := opts[n]
		// a template sub-option is a marker, not a component
		if n == "template" && sub.IsTemplate {
			continue
		}
		out = append(out, Resolve(reg, ctx.Named(n), sub)...)
	}
	return out
}

// componentName disambiguates a collection's plural class from its singular
// item class, e.g. option "items" with singular "item" -> "itemsCollection".
// A collection without a declared singular name falls back to the option
// name itself.
func componentName(optionName string, owner *metadata.Option) string {
	if owner == nil || !owner.IsCollection {
		return optionName
	}
	singular := owner.SingularName
	if singular == "" {
		singular = optionName
	}
	return Plural(singular) + "Collection"
}

func sortedNames(opts map[string]*metadata.Option) []string {
	names := make([]string, 0, len(opts))
	for n := range opts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

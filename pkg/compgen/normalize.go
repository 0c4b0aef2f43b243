package compgen

import (
	"path"

	linq "github.com/ahmetb/go-linq/v3"
)

// Normalize collapses the flat nested-descriptor list into the final output
// set: duplicates merged by class name, base classes extracted as standalone
// descriptors, and every remaining descriptor classified as derived or
// simple-based.
func Normalize(cfg Config, all []NestedDescriptor) ([]NestedDescriptor, []BaseDescriptor) {
	unique := MergeDescriptors(all)
	bases := extractBases(unique)
	return finalize(cfg, unique), bases
}

// MergeDescriptors folds the list into a unique-by-class-name set, keeping
// first-seen order. On collision the property lists are unioned and the base
// reference is filled in only if not already set; nothing is dropped or
// overwritten. The fold is idempotent: merging an already-merged list yields
// the same set.
func MergeDescriptors(all []NestedDescriptor) []NestedDescriptor {
	byName := make(map[string]int, len(all))
	out := make([]NestedDescriptor, 0, len(all))

	for _, d := range all {
		idx, seen := byName[d.ClassName]
		if !seen {
			cp := d
			cp.Properties = append([]string(nil), d.Properties...)
			byName[d.ClassName] = len(out)
			out = append(out, cp)
			continue
		}

		m := &out[idx]
		m.Properties = unionNames(m.Properties, d.Properties)
		if m.BaseClass == "" && d.BaseClass != "" {
			m.BaseClass = d.BaseClass
			m.BasePath = d.BasePath
		}
		if d.HasTemplate {
			m.HasTemplate = true
		}
	}
	return out
}

// extractBases synthesizes one standalone parent descriptor per distinct
// baseClass that is not itself present as a class in the unique set. The
// base's property set is the union across every deriving descriptor, so no
// deriver's shape is lost.
func extractBases(unique []NestedDescriptor) []BaseDescriptor {
	present := make(map[string]bool, len(unique))
	for _, d := range unique {
		present[d.ClassName] = true
	}

	var names []string
	linq.From(unique).
		WhereT(func(d NestedDescriptor) bool {
			return d.BaseClass != "" && !d.HasSimpleBaseClass && !present[d.BaseClass]
		}).
		SelectT(func(d NestedDescriptor) string { return d.BaseClass }).
		Distinct().
		ToSlice(&names)

	bases := make([]BaseDescriptor, 0, len(names))
	for _, name := range names {
		b := BaseDescriptor{ClassName: name, Properties: []string{}}
		for _, d := range unique {
			if d.BaseClass != name {
				continue
			}
			if b.Path == "" {
				b.Path = d.BasePath
			}
			b.Properties = unionNames(b.Properties, d.Properties)
		}
		bases = append(bases, b)
	}
	return bases
}

// finalize classifies every unique descriptor. A derived descriptor hands
// its properties to its base and points at the base sub-location; everything
// else gets the generic fallback base matching its collection flag.
func finalize(cfg Config, unique []NestedDescriptor) []NestedDescriptor {
	out := make([]NestedDescriptor, 0, len(unique))
	for _, d := range unique {
		if d.BaseClass != "" && !d.HasSimpleBaseClass {
			d.Properties = nil
			d.BasePath = path.Join(cfg.BasePathPart, d.BasePath)
		} else if d.BaseClass == "" {
			if d.IsCollection {
				d.BaseClass = SimpleCollectionBaseClass
			} else {
				d.BaseClass = SimpleBaseClass
			}
			d.HasSimpleBaseClass = true
		}
		out = append(out, d)
	}
	return out
}

// unionNames appends the names of extra not already present in base,
// preserving order of first appearance.
func unionNames(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, n := range base {
		seen[n] = true
	}
	for _, n := range extra {
		if seen[n] {
			continue
		}
		seen[n] = true
		base = append(base, n)
	}
	return base
}

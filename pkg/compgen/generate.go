package compgen

import (
	"log"
	"path"

	"github.com/thorn-jmh/errorst"

	"dxgen/pkg/metadata"
)

// Generate runs the whole pipeline against the configured locations:
// read source metadata, build widget descriptors, normalize the nested
// component set, persist everything. Single-threaded, one pass; the first
// failing read or write aborts the run and whatever was already written
// stays in place.
func Generate(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return GenerateTo(cfg, metadata.NewFileStore(cfg.OutputFolderPath))
}

// GenerateTo runs the pipeline against an explicit store.
func GenerateTo(cfg Config, store metadata.Store) error {
	// first: read the source schema
	src, err := metadata.FromJSONFile(cfg.SourceMetadataFilePath)
	if err != nil {
		return errorst.Wrap(err, "failed to read source metadata <%s>", cfg.SourceMetadataFilePath)
	}

	// second: build descriptors and normalize the nested set
	widgets, all := BuildWidgets(src)
	nested, bases := Normalize(cfg, all)

	// third: persist, widgets at the root, bases before the classes
	// deriving from them
	for i := range widgets {
		if err := store.Write(widgets[i].Selector, &widgets[i]); err != nil {
			return errorst.Wrap(err, "failed to persist widget <%s>", widgets[i].ClassName)
		}
	}
	for i := range bases {
		key := path.Join(cfg.NestedPathPart, cfg.BasePathPart, bases[i].Path)
		if err := store.Write(key, &bases[i]); err != nil {
			return errorst.Wrap(err, "failed to persist base <%s>", bases[i].ClassName)
		}
	}
	for i := range nested {
		key := path.Join(cfg.NestedPathPart, nested[i].Path)
		if err := store.Write(key, &nested[i]); err != nil {
			return errorst.Wrap(err, "failed to persist nested component <%s>", nested[i].ClassName)
		}
	}

	log.Printf("generated %d widget(s), %d nested component(s), %d base class(es)", len(widgets), len(nested), len(bases))
	return nil
}

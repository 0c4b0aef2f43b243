package compgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dxgen/pkg/metadata"
)

func writeSource(t *testing.T, doc string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "integration-data.json")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))
	return p
}

func TestGenerate_EndToEnd(t *testing.T) {
	src := writeSource(t, `{
		"Widgets": {
			"dxTextBox": {
				"Module": "textBox",
				"Options": {
					"value": {},
					"onFocusIn": {"IsEvent": true},
					"buttons": {
						"IsCollection": true,
						"SingularName": "button",
						"Options": {"name": {}, "location": {}}
					},
					"label": {"ComplexTypes": ["Label"]}
				}
			},
			"dxDeprecated": {}
		},
		"ExtraObjects": {
			"Label": {"Options": {"text": {}, "visible": {}}}
		}
	}`)

	cfg := DefaultConfig()
	cfg.SourceMetadataFilePath = src
	cfg.OutputFolderPath = t.TempDir()

	require.NoError(t, Generate(cfg))

	store := metadata.NewFileStore(cfg.OutputFolderPath)

	var w WidgetDescriptor
	require.NoError(t, store.Read("dx-text-box", &w))
	assert.Equal(t, "TextBox", w.ClassName)
	assert.True(t, w.IsEditor)
	assert.Contains(t, w.Events, Event{Emit: "onFocusIn", Subscribe: "focusIn"})
	assert.Contains(t, w.Events, Event{Emit: "valueChanged", Subscribe: "valueChanged"})

	var buttons NestedDescriptor
	require.NoError(t, store.Read("nested/buttons-collection", &buttons))
	assert.Equal(t, "ButtonsCollection", buttons.ClassName)
	assert.Equal(t, SimpleCollectionBaseClass, buttons.BaseClass)
	assert.True(t, buttons.HasSimpleBaseClass)
	assert.Equal(t, []string{"location", "name"}, buttons.Properties)

	var label NestedDescriptor
	require.NoError(t, store.Read("nested/label", &label))
	assert.Equal(t, "DxoLabel", label.BaseClass)
	assert.Equal(t, "base/label", label.BasePath)
	assert.Empty(t, label.Properties)

	var base BaseDescriptor
	require.NoError(t, store.Read("nested/base/label", &base))
	assert.Equal(t, "DxoLabel", base.ClassName)
	assert.Equal(t, []string{"text", "visible"}, base.Properties)

	// the module-less widget produced no document
	_, err := os.Stat(filepath.Join(cfg.OutputFolderPath, "dx-deprecated.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_MissingSourceIsFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceMetadataFilePath = filepath.Join(t.TempDir(), "absent.json")
	cfg.OutputFolderPath = t.TempDir()

	assert.Error(t, Generate(cfg))
}

func TestGenerate_ValidatesConfig(t *testing.T) {
	assert.Error(t, Generate(Config{OutputFolderPath: "out"}))
	assert.Error(t, Generate(Config{SourceMetadataFilePath: "in.json"}))
}

func TestLoadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dxgen.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
		"sourceMetadataFilePath": "meta/widgets.json",
		"outputFolderPath": "out",
		"nestedPathPart": "sub"
	}`), 0o644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "meta/widgets.json", cfg.SourceMetadataFilePath)
	assert.Equal(t, "out", cfg.OutputFolderPath)
	assert.Equal(t, "sub", cfg.NestedPathPart)
	assert.Equal(t, "base", cfg.BasePathPart, "unset settings keep their defaults")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/iceberg"
)

const tableJSON = `{
	"type": "struct",
	"schema-id": 2,
	"fields": [
		{"id": 1, "name": "id", "required": true, "type": "int"},
		{"id": 2, "name": "tags", "required": false, "type": {
			"type": "list", "element-id": 3, "element-required": true, "element": "string"
		}},
		{"id": 4, "name": "props", "required": false, "type": {
			"type": "map", "key-id": 5, "key": "string",
			"value-id": 6, "value-required": false, "value": "double"
		}}
	]
}`

const tableYAML = `
type: struct
schema-id: 2
fields:
  - {id: 1, name: id, required: true, type: int}
  - id: 2
    name: tags
    required: false
    type: {type: list, element-id: 3, element-required: true, element: string}
  - id: 4
    name: props
    required: false
    type:
      type: map
      key-id: 5
      key: string
      value-id: 6
      value-required: false
      value: double
`

func tableSchema() *iceberg.Schema {
	return iceberg.NewSchema(2,
		iceberg.NewSchemaField(1, "id", true, iceberg.IntType),
		iceberg.NewSchemaField(2, "tags", false, iceberg.NewListType(3, true, iceberg.StringType)),
		iceberg.NewSchemaField(4, "props", false, iceberg.NewMapType(5, iceberg.StringType, 6, false, iceberg.DoubleType)),
	)
}

func TestParseIceberg(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{"json": tableJSON, "yaml": tableYAML} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			schema, err := ParseIceberg([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tableSchema(), schema)
		})
	}
}

func TestParseIceberg_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseIceberg([]byte(`{"fields": [{"id": 1, "name": "a", "required": true, "type": "lng"}]}`))
	require.ErrorIs(t, err, iceberg.ErrUnknownPrimitive)
	assert.Contains(t, err.Error(), "failed to parse schema")
	assert.Contains(t, err.Error(), `did you mean "long"?`)

	_, err = ParseIceberg([]byte("fields: [\n"))
	require.Error(t, err)
}

func TestParseIceberg_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"comment", "# only a comment\n"},
		{"json null", "null"},
		{"yaml null", "~\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema, err := ParseIceberg([]byte(tt.doc))
			require.ErrorIs(t, err, ErrEmptySchema)
			assert.Nil(t, schema)
		})
	}

	schema, err := ParseIceberg([]byte(`{"type": "struct", "schema-id": 2, "fields": []}`))
	require.NoError(t, err)
	assert.Equal(t, 2, schema.ID)
	assert.Empty(t, schema.Fields)
}

func TestMarshalIceberg(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			data, err := MarshalIceberg(tableSchema(), format)
			require.NoError(t, err)

			schema, err := ParseIceberg(data)
			require.NoError(t, err)
			assert.Equal(t, tableSchema(), schema)
		})
	}

	_, err := MarshalIceberg(tableSchema(), "toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteAndLoadIcebergFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, name := range []string{"schema.json", "schema.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteIcebergFile(tableSchema(), path, FormatFromPath(path)))

		schema, err := LoadIcebergFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, tableSchema(), schema, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "schema.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"schema-id": 2`)

	_, err = LoadIcebergFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{" yml ", FormatYAML},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("a/b"))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/internal/schemafile"
	"schema-caster/node"
)

const usersSchema = `{
  "type": "struct",
  "schema-id": 1,
  "fields": [
    {"id": 1, "name": "id", "required": true, "type": "long"},
    {"id": 2, "name": "tags", "required": false, "type": {
      "type": "list", "element-id": 3, "element-required": false, "element": "string"
    }}
  ]
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))

	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestToArrowAndBack(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "users.json", usersSchema)

	out, err := run(t, "to-arrow", schemaPath)
	require.NoError(t, err)
	assert.Contains(t, out, "- id: type=int64")
	assert.Contains(t, out, "- tags: type=list<field_3: utf8, nullable>, nullable")

	ipcPath := filepath.Join(dir, "users.arrows")
	out, err = run(t, "to-arrow", schemaPath, "--ipc", ipcPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "from-arrow", ipcPath, "--format", "yaml", "--schema-id", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "schema-id: 7")
	assert.Contains(t, out, "name: tags")
	assert.Contains(t, out, "element: string")

	out, err = run(t, "from-arrow", ipcPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"schema-id": 0`)
}

func TestFromArrow_Strict(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "fixed.json", `{"fields": [
		{"id": 1, "name": "blob", "required": true, "type": {
			"type": "list", "element-id": 2, "element-required": true, "element": "fixed[4]"
		}}
	]}`)

	ipcPath := filepath.Join(dir, "fixed.arrows")
	_, err := run(t, "to-arrow", schemaPath, "--ipc", ipcPath)
	require.NoError(t, err)

	_, err = run(t, "from-arrow", ipcPath, "--strict")
	require.NoError(t, err, "plain lists are exact")

	configPath := writeFile(t, dir, "config.yaml", "format: toml\n")
	_, err = run(t, "from-arrow", ipcPath, "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't load config")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "check", writeFile(t, dir, "users.json", usersSchema))
	require.NoError(t, err)
	assert.Equal(t, "stable\n", out)

	_, err = run(t, "check", writeFile(t, dir, "map.yaml", `
fields:
  - id: 1
    name: props
    required: true
    type: {type: map, key-id: 2, key: string, value-id: 3, value-required: true, value: int}
`))
	assert.ErrorIs(t, err, node.ErrUnsupportedType)

	out, err = run(t, "check", writeFile(t, dir, "blank.yaml", "# nothing yet\n"))
	require.ErrorIs(t, err, schemafile.ErrEmptySchema)
	assert.Empty(t, out)

	_, err = run(t, "check", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't load iceberg schema")
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^uuid\s+fixed_size_binary\[16\]$`, out)
	assert.Regexp(t, `(?m)^timestamptz\s+timestamp\[us, tz=UTC\]$`, out)
	assert.Regexp(t, `(?m)^decimal\(38, 10\)\s+decimal\(38, 10\)$`, out)
}

func TestExamples(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	examples := []struct {
		path   string
		stable bool
	}{
		{filepath.Join("examples", "basic", "schema.json"), true},
		{filepath.Join("examples", "nested", "schema.yaml"), true},
		{filepath.Join("examples", "maps", "schema.json"), false},
	}

	for _, ex := range examples {
		t.Run(filepath.Base(filepath.Dir(ex.path)), func(t *testing.T) {
			path := filepath.Join(repoRoot, ex.path)
			ipcPath := filepath.Join(t.TempDir(), "schema.arrows")

			_, err := run(t, "to-arrow", path, "--ipc", ipcPath)
			require.NoError(t, err)

			out, err := run(t, "from-arrow", ipcPath, "--config", filepath.Join(repoRoot, "examples", "config.yaml"))
			if !ex.stable {
				assert.ErrorIs(t, err, node.ErrUnsupportedType)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out, "schema-id: 1")

			out, err = run(t, "check", path)
			require.NoError(t, err)
			assert.Equal(t, "stable\n", out)
		})
	}
}

package schemafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"schema-caster/iceberg"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown schema format")
	ErrEmptySchema   = errors.New("empty schema document")
)

var jsonNull = []byte("null")

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q, expected json or yaml", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadIcebergFile loads and parses a table-format schema from the given path.
func LoadIcebergFile(path string) (*iceberg.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return ParseIceberg(data)
}

// ParseIceberg parses a JSON or YAML document into a table-format schema.
// A document without content, such as a blank or comment-only file or a
// bare null, fails with ErrEmptySchema.
func ParseIceberg(data []byte) (*iceberg.Schema, error) {
	var (
		schema iceberg.Schema
		err    error
	)

	if json.Valid(data) {
		err = decodeJSON(data, &schema)
	} else {
		err = decodeYAML(data, &schema)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	return &schema, nil
}

func decodeJSON(data []byte, schema *iceberg.Schema) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return ErrEmptySchema
	}

	return json.Unmarshal(data, schema)
}

// decodeYAML goes through a yaml.Node, since yaml.Unmarshal leaves the
// target untouched for an empty stream.
func decodeYAML(data []byte, schema *iceberg.Schema) error {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return err
	}

	if doc.Kind == 0 || len(doc.Content) == 0 || doc.Content[0].Tag == "!!null" {
		return ErrEmptySchema
	}

	return doc.Decode(schema)
}

// MarshalIceberg serializes a table-format schema in the given format.
func MarshalIceberg(schema *iceberg.Schema, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(schema)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteIcebergFile writes a table-format schema to the given path.
func WriteIcebergFile(schema *iceberg.Schema, path string, format Format) error {
	data, err := MarshalIceberg(schema, format)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

package iceberg

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownNestedType = errors.New("unknown nested type")
	ErrMissingType       = errors.New("missing type")
)

const (
	typeStruct = "struct"
	typeList   = "list"
	typeMap    = "map"
)

// --- wire layout shared by the YAML and JSON encodings ---

type wireSchema struct {
	Type     string      `yaml:"type" json:"type"`
	SchemaID int         `yaml:"schema-id" json:"schema-id"`
	Fields   []wireField `yaml:"fields" json:"fields"`
}

type wireField struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Required bool     `yaml:"required" json:"required"`
	Type     wireType `yaml:"type" json:"type"`
}

type wireStruct struct {
	Type   string      `yaml:"type" json:"type"`
	Fields []wireField `yaml:"fields" json:"fields"`
}

type wireList struct {
	Type            string   `yaml:"type" json:"type"`
	ElementID       int      `yaml:"element-id" json:"element-id"`
	ElementRequired bool     `yaml:"element-required" json:"element-required"`
	Element         wireType `yaml:"element" json:"element"`
}

type wireMap struct {
	Type          string   `yaml:"type" json:"type"`
	KeyID         int      `yaml:"key-id" json:"key-id"`
	Key           wireType `yaml:"key" json:"key"`
	ValueID       int      `yaml:"value-id" json:"value-id"`
	ValueRequired bool     `yaml:"value-required" json:"value-required"`
	Value         wireType `yaml:"value" json:"value"`
}

// wireType is a primitive spelled as a string, or a nested type as a mapping.
type wireType struct {
	t Type
}

// MarshalYAML implements yaml.Marshaler.
func (w wireType) MarshalYAML() (any, error) {
	switch t := w.t.(type) {
	case PrimitiveType:
		return t.String(), nil
	case *StructType:
		return wireStruct{Type: typeStruct, Fields: toWireFields(t.Fields)}, nil
	case *ListType:
		return wireList{
			Type:            typeList,
			ElementID:       t.ElementID,
			ElementRequired: t.ElementRequired,
			Element:         wireType{t.Element},
		}, nil
	case *MapType:
		return wireMap{
			Type:          typeMap,
			KeyID:         t.KeyID,
			Key:           wireType{t.Key},
			ValueID:       t.ValueID,
			ValueRequired: t.ValueRequired,
			Value:         wireType{t.Value},
		}, nil
	case nil:
		return nil, ErrMissingType
	default:
		return nil, fmt.Errorf("unexpected type %T", w.t)
	}
}

// MarshalJSON implements json.Marshaler.
func (w wireType) MarshalJSON() ([]byte, error) {
	v, err := w.MarshalYAML()
	if err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Accepts:
//   - String: "long", "decimal(9, 2)", "fixed[16]"
//   - Mapping with "type": struct, list or map
func (w *wireType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		p, err := ParsePrimitive(str)
		if err != nil {
			return err
		}

		w.t = p

		return nil

	case yaml.MappingNode:
		var head struct {
			Type string `yaml:"type"`
		}

		err := node.Decode(&head)
		if err != nil {
			return err
		}

		switch head.Type {
		case typeStruct:
			var ws wireStruct
			if err := node.Decode(&ws); err != nil {
				return err
			}

			fields, err := fromWireFields(ws.Fields)
			if err != nil {
				return err
			}

			w.t = &StructType{Fields: fields}

		case typeList:
			var wl wireList
			if err := node.Decode(&wl); err != nil {
				return err
			}

			if wl.Element.t == nil {
				return fmt.Errorf("list element %d: %w", wl.ElementID, ErrMissingType)
			}

			w.t = NewListType(wl.ElementID, wl.ElementRequired, wl.Element.t)

		case typeMap:
			var wm wireMap
			if err := node.Decode(&wm); err != nil {
				return err
			}

			if wm.Key.t == nil {
				return fmt.Errorf("map key %d: %w", wm.KeyID, ErrMissingType)
			}

			if wm.Value.t == nil {
				return fmt.Errorf("map value %d: %w", wm.ValueID, ErrMissingType)
			}

			w.t = NewMapType(wm.KeyID, wm.Key.t, wm.ValueID, wm.ValueRequired, wm.Value.t)

		default:
			return fmt.Errorf("%w %q (line %d)", ErrUnknownNestedType, head.Type, node.Line)
		}

		return nil

	default:
		return fmt.Errorf("expected string or mapping for type, got %v", node.Kind)
	}
}

func toWireFields(fields []StructField) []wireField {
	out := make([]wireField, len(fields))
	for i, f := range fields {
		out[i] = wireField{ID: f.ID, Name: f.Name, Required: f.Required, Type: wireType{f.Type}}
	}

	return out
}

func fromWireFields(fields []wireField) ([]StructField, error) {
	out := make([]StructField, len(fields))
	for i, f := range fields {
		if f.Type.t == nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrMissingType)
		}

		out[i] = NewStructField(f.ID, f.Name, f.Required, f.Type.t)
	}

	return out, nil
}

// --- Schema ---

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (any, error) {
	return wireSchema{
		Type:     typeStruct,
		SchemaID: s.ID,
		Fields:   toWireFields(s.AsStruct().Fields),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var ws wireSchema

	err := node.Decode(&ws)
	if err != nil {
		return err
	}

	if ws.Type != "" && ws.Type != typeStruct {
		return fmt.Errorf("schema must be a struct, got %q", ws.Type)
	}

	fields, err := fromWireFields(ws.Fields)
	if err != nil {
		return err
	}

	s.ID = ws.SchemaID
	s.Fields = make([]SchemaField, len(fields))
	for i, f := range fields {
		s.Fields[i] = SchemaField(f)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	v, err := s.MarshalYAML()
	if err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler. The document is re-encoded as a
// YAML node so both encodings share one decoder.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var doc any

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return err
	}

	return s.UnmarshalYAML(&node)
}

package iceberg

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"schema-caster/primitive"
)

// Type is a table-format type. The set of implementations is closed:
// PrimitiveType, *StructType, *ListType and *MapType.
type Type interface {
	fmt.Stringer
	isType()
}

// PrimitiveType is a scalar type atom. Precision and Scale are meaningful
// only for KindDecimal, Length only for KindFixed.
type PrimitiveType struct {
	Kind      primitive.KindEnum
	Precision uint32
	Scale     uint8
	Length    uint64
}

func (PrimitiveType) isType() {}

// String returns the table-format spelling, e.g. "decimal(9, 2)" or "fixed[16]".
func (t PrimitiveType) String() string {
	switch t.Kind {
	case primitive.KindDecimal:
		return fmt.Sprintf("decimal(%d, %d)", t.Precision, t.Scale)
	case primitive.KindFixed:
		return "fixed[" + strconv.FormatUint(t.Length, 10) + "]"
	default:
		if name := t.Kind.Name(); name != "" {
			return name
		}

		return t.Kind.String()
	}
}

// PrimitiveOf returns the non-parameterized primitive of the given kind.
func PrimitiveOf(kind primitive.KindEnum) PrimitiveType {
	return PrimitiveType{Kind: kind}
}

// DecimalOf returns a decimal type with the given precision and scale.
func DecimalOf(precision uint32, scale uint8) PrimitiveType {
	return PrimitiveType{Kind: primitive.KindDecimal, Precision: precision, Scale: scale}
}

// FixedOf returns a fixed-length binary type of length bytes.
func FixedOf(length uint64) PrimitiveType {
	return PrimitiveType{Kind: primitive.KindFixed, Length: length}
}

var (
	BooleanType     = PrimitiveOf(primitive.KindBoolean)
	IntType         = PrimitiveOf(primitive.KindInt)
	LongType        = PrimitiveOf(primitive.KindLong)
	FloatType       = PrimitiveOf(primitive.KindFloat)
	DoubleType      = PrimitiveOf(primitive.KindDouble)
	DateType        = PrimitiveOf(primitive.KindDate)
	TimeType        = PrimitiveOf(primitive.KindTime)
	TimestampType   = PrimitiveOf(primitive.KindTimestamp)
	TimestamptzType = PrimitiveOf(primitive.KindTimestamptz)
	StringType      = PrimitiveOf(primitive.KindString)
	UUIDType        = PrimitiveOf(primitive.KindUUID)
	BinaryType      = PrimitiveOf(primitive.KindBinary)
)

// StructField is a named, identified field of a struct.
type StructField struct {
	ID       int
	Name     string
	Required bool
	Type     Type
}

// NewStructField creates a struct field.
func NewStructField(id int, name string, required bool, typ Type) StructField {
	return StructField{ID: id, Name: name, Required: required, Type: typ}
}

func (f StructField) String() string {
	return fmt.Sprintf("%d: %s: %s %s", f.ID, f.Name, requiredness(f.Required), f.Type)
}

// StructType is an ordered sequence of fields.
type StructType struct {
	Fields []StructField
}

func (*StructType) isType() {}

// NewStructType creates a struct type from fields, preserving their order.
func NewStructType(fields ...StructField) *StructType {
	return &StructType{Fields: slices.Clone(fields)}
}

func (t *StructType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.String()
	}

	return "struct<" + strings.Join(parts, ", ") + ">"
}

// ListType is a list of elements of one type. The element has an identifier
// but no name.
type ListType struct {
	ElementID       int
	ElementRequired bool
	Element         Type
}

func (*ListType) isType() {}

// NewListType creates a list type.
func NewListType(elementID int, elementRequired bool, element Type) *ListType {
	return &ListType{ElementID: elementID, ElementRequired: elementRequired, Element: element}
}

func (t *ListType) String() string {
	return "list<" + t.Element.String() + ">"
}

// MapType maps keys to values. Keys are always required.
type MapType struct {
	KeyID         int
	Key           Type
	ValueID       int
	ValueRequired bool
	Value         Type
}

func (*MapType) isType() {}

// NewMapType creates a map type.
func NewMapType(keyID int, key Type, valueID int, valueRequired bool, value Type) *MapType {
	return &MapType{KeyID: keyID, Key: key, ValueID: valueID, ValueRequired: valueRequired, Value: value}
}

func (t *MapType) String() string {
	return "map<" + t.Key.String() + ", " + t.Value.String() + ">"
}

// SchemaField is a root field of a schema.
type SchemaField struct {
	ID       int
	Name     string
	Required bool
	Type     Type
}

// NewSchemaField creates a schema root field.
func NewSchemaField(id int, name string, required bool, typ Type) SchemaField {
	return SchemaField{ID: id, Name: name, Required: required, Type: typ}
}

// AsStructField returns the field as a struct field with the same attributes.
func (f SchemaField) AsStructField() StructField {
	return StructField(f)
}

func (f SchemaField) String() string {
	return f.AsStructField().String()
}

// Schema is an identified, ordered sequence of root fields.
type Schema struct {
	ID     int
	Fields []SchemaField
}

// NewSchema creates a schema, preserving the order of fields.
func NewSchema(id int, fields ...SchemaField) *Schema {
	return &Schema{ID: id, Fields: slices.Clone(fields)}
}

// FieldByName returns the root field with the given name.
func (s *Schema) FieldByName(name string) (SchemaField, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return SchemaField{}, false
}

// AsStruct returns the root fields as a struct type.
func (s *Schema) AsStruct() *StructType {
	fields := make([]StructField, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = f.AsStructField()
	}

	return &StructType{Fields: fields}
}

// HighestFieldID returns the largest identifier used by any field, list
// element, map key or map value, at any depth.
func (s *Schema) HighestFieldID() int {
	highest := 0
	for _, f := range s.Fields {
		highest = max(highest, f.ID, highestID(f.Type))
	}

	return highest
}

func (s *Schema) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = "  " + f.String()
	}

	return "table {\n" + strings.Join(parts, "\n") + "\n}"
}

func highestID(t Type) int {
	switch t := t.(type) {
	case *StructType:
		highest := 0
		for _, f := range t.Fields {
			highest = max(highest, f.ID, highestID(f.Type))
		}

		return highest
	case *ListType:
		return max(t.ElementID, highestID(t.Element))
	case *MapType:
		return max(t.KeyID, t.ValueID, highestID(t.Key), highestID(t.Value))
	default:
		return 0
	}
}

func requiredness(required bool) string {
	if required {
		return "required"
	}

	return "optional"
}

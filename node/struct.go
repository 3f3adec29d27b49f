package node

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"schema-caster/iceberg"
	"schema-caster/internal/common"
	"schema-caster/options"
)

// ToArrowField converts a table-format field into a columnar field. The
// identifier is dropped; nullability is the negation of requiredness.
func ToArrowField(f iceberg.StructField) (arrow.Field, error) {
	dt, err := ToArrowType(f.Type)
	if err != nil {
		return arrow.Field{}, fmt.Errorf("field %q: %w", f.Name, err)
	}

	return arrow.Field{Name: f.Name, Type: dt, Nullable: !f.Required}, nil
}

// FromArrowField converts a columnar field found under parent into a
// table-format field carrying the placeholder identifier.
func (c *Caster) FromArrowField(parent string, f arrow.Field) (iceberg.StructField, error) {
	t, err := c.FromArrowType(common.JoinPath(parent, f.Name), f.Type)
	if err != nil {
		return iceberg.StructField{}, fmt.Errorf("field %q: %w", f.Name, err)
	}

	return iceberg.NewStructField(options.PlaceholderID, f.Name, !f.Nullable, t), nil
}

func structToArrow(t *iceberg.StructType) (arrow.DataType, error) {
	fields := make([]arrow.Field, len(t.Fields))
	for i, f := range t.Fields {
		field, err := ToArrowField(f)
		if err != nil {
			return nil, err
		}

		fields[i] = field
	}

	return arrow.StructOf(fields...), nil
}

func (c *Caster) structFromArrow(path string, t *arrow.StructType) (iceberg.Type, error) {
	fields := make([]iceberg.StructField, t.NumFields())
	for i, f := range t.Fields() {
		field, err := c.FromArrowField(path, f)
		if err != nil {
			return nil, err
		}

		fields[i] = field
	}

	return &iceberg.StructType{Fields: fields}, nil
}

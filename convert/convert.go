// Package convert converts whole schemas between the table-format model and
// Arrow, wrapping every failure into a *SchemaConversionError.
package convert

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/samber/lo"

	"schema-caster/iceberg"
	"schema-caster/internal/common"
	"schema-caster/internal/diagnostic"
	"schema-caster/node"
	"schema-caster/options"
	"schema-caster/primitive"
)

// IcebergToArrowSchema converts a table-format schema into an Arrow schema,
// preserving field order. The first failing field aborts the conversion.
func IcebergToArrowSchema(schema *iceberg.Schema) (*arrow.Schema, error) {
	if schema == nil {
		return nil, wrap("can't convert iceberg schema", node.ErrNilType)
	}

	fields := make([]arrow.Field, len(schema.Fields))
	for i, f := range schema.Fields {
		field, err := node.ToArrowField(f.AsStructField())
		if err != nil {
			return nil, wrap(fmt.Sprintf("can't convert iceberg schema %d", schema.ID), err)
		}

		fields[i] = field
	}

	return arrow.NewSchema(fields, nil), nil
}

// IcebergToArrowField converts a single table-format field.
func IcebergToArrowField(field iceberg.StructField) (arrow.Field, error) {
	f, err := node.ToArrowField(field)
	if err != nil {
		return arrow.Field{}, wrap("can't convert iceberg field", err)
	}

	return f, nil
}

// IcebergToArrowType converts a single table-format type.
func IcebergToArrowType(t iceberg.Type) (arrow.DataType, error) {
	dt, err := node.ToArrowType(t)
	if err != nil {
		return nil, wrap("can't convert iceberg type", err)
	}

	return dt, nil
}

// ArrowToIcebergSchema converts an Arrow schema into a table-format schema.
// Every field and nested element carries options.PlaceholderID.
func ArrowToIcebergSchema(schema *arrow.Schema, opts ...options.Option) (*iceberg.Schema, error) {
	out, _, err := ArrowToIcebergSchemaWithDiagnostics(schema, opts...)
	return out, err
}

// ArrowToIcebergSchemaWithDiagnostics is ArrowToIcebergSchema that also
// reports every lossy step and the identifier placeholder. Diagnostics are
// returned on failure too.
func ArrowToIcebergSchemaWithDiagnostics(
	schema *arrow.Schema, opts ...options.Option,
) (*iceberg.Schema, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if schema == nil {
		return nil, diags, wrap("can't convert arrow schema", node.ErrNilType)
	}

	o := options.New(opts...)
	caster := node.NewCaster(o, &diags)

	fields := make([]iceberg.SchemaField, schema.NumFields())
	for i, f := range schema.Fields() {
		field, err := caster.FromArrowField("", f)
		if err != nil {
			return nil, diags, wrap("can't convert arrow schema", err)
		}

		fields[i] = iceberg.SchemaField(field)
	}

	if !common.IsEmpty(fields) {
		diags.AddInfo(
			diagnostic.CodePlaceholderID,
			fmt.Sprintf("%s: identifiers set to %d", primitive.LossFieldID, options.PlaceholderID),
			"", "",
		)
	}

	return iceberg.NewSchema(o.SchemaID, fields...), diags, nil
}

// RoundTrip converts schema forward, back, and forward again, and reports
// whether both forward results are equal. Identifiers are not compared.
// Every forward type currently maps back onto a type with the same forward
// result, so stable is false only when a mapping added to one direction has
// no counterpart in the other.
func RoundTrip(schema *iceberg.Schema) (*iceberg.Schema, bool, error) {
	first, err := IcebergToArrowSchema(schema)
	if err != nil {
		return nil, false, err
	}

	back, err := ArrowToIcebergSchema(first, options.WithSchemaID(schema.ID))
	if err != nil {
		return nil, false, err
	}

	second, err := IcebergToArrowSchema(back)
	if err != nil {
		return back, false, err
	}

	return back, schemasEqual(first, second), nil
}

// schemasEqual compares two forward results. List child names encode element
// identifiers, which the reverse direction does not recover, so they are
// ignored along with field metadata.
func schemasEqual(a, b *arrow.Schema) bool {
	if a.NumFields() != b.NumFields() {
		return false
	}

	return lo.EveryBy(lo.Zip2(a.Fields(), b.Fields()), func(p lo.Tuple2[arrow.Field, arrow.Field]) bool {
		return p.A.Name == p.B.Name && p.A.Nullable == p.B.Nullable && arrow.TypeEqual(p.A.Type, p.B.Type)
	})
}

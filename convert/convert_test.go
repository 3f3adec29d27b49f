package convert_test

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/convert"
	"schema-caster/iceberg"
	"schema-caster/internal/diagnostic"
	"schema-caster/node"
	"schema-caster/options"
	"schema-caster/primitive"
)

func TestIcebergToArrowSchema(t *testing.T) {
	t.Parallel()

	schema := iceberg.NewSchema(0,
		iceberg.NewSchemaField(1, "id", true, iceberg.IntType),
		iceberg.NewSchemaField(2, "name", true, iceberg.StringType),
	)

	got, err := convert.IcebergToArrowSchema(schema)
	require.NoError(t, err)

	want := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int32},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, nil)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestIcebergToArrowField_Struct(t *testing.T) {
	t.Parallel()

	field := iceberg.NewStructField(1, "user", true, iceberg.NewStructType(
		iceberg.NewStructField(2, "id", true, iceberg.IntType),
		iceberg.NewStructField(3, "name", true, iceberg.StringType),
	))

	got, err := convert.IcebergToArrowField(field)
	require.NoError(t, err)
	assert.Equal(t, "user", got.Name)
	assert.False(t, got.Nullable)

	st, ok := got.Type.(*arrow.StructType)
	require.True(t, ok)
	require.Equal(t, 2, st.NumFields())
	assert.True(t, st.Field(0).Equal(arrow.Field{Name: "id", Type: arrow.PrimitiveTypes.Int32}))
	assert.True(t, st.Field(1).Equal(arrow.Field{Name: "name", Type: arrow.BinaryTypes.String}))
}

func TestIcebergToArrowType_List(t *testing.T) {
	t.Parallel()

	got, err := convert.IcebergToArrowType(iceberg.NewListType(1, false, iceberg.StringType))
	require.NoError(t, err)

	list, ok := got.(*arrow.ListType)
	require.True(t, ok)
	assert.Equal(t, "field_1", list.ElemField().Name)
	assert.True(t, list.ElemField().Nullable)
	assert.True(t, arrow.TypeEqual(arrow.BinaryTypes.String, list.Elem()))
}

func TestIcebergToArrowSchema_Errors(t *testing.T) {
	t.Parallel()

	schema := iceberg.NewSchema(5,
		iceberg.NewSchemaField(1, "ok", true, iceberg.IntType),
		iceberg.NewSchemaField(2, "amount", true, iceberg.DecimalOf(10, 200)),
		iceberg.NewSchemaField(3, "blob", true, iceberg.FixedOf(1<<40)),
	)

	got, err := convert.IcebergToArrowSchema(schema)
	require.Error(t, err)
	assert.Nil(t, got)

	var convErr *convert.SchemaConversionError
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, node.ErrDecimalScale)
	assert.NotErrorIs(t, err, node.ErrFixedSize, "first failure aborts")
	assert.Equal(t,
		`schema conversion error: can't convert iceberg schema 5: field "amount": `+
			`decimal scale out of range: can't convert decimal with scale 200`,
		err.Error())

	_, err = convert.IcebergToArrowSchema(nil)
	assert.ErrorIs(t, err, node.ErrNilType)

	_, err = convert.IcebergToArrowType(iceberg.FixedOf(1 << 40))
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, node.ErrFixedSize)

	_, err = convert.IcebergToArrowField(iceberg.NewStructField(1, "x", true, nil))
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, node.ErrNilType)
}

func TestArrowToIcebergSchema(t *testing.T) {
	t.Parallel()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "score", Type: arrow.PrimitiveTypes.Uint16, Nullable: true},
		{Name: "tags", Type: arrow.ListOf(arrow.BinaryTypes.String), Nullable: true},
	}, nil)

	got, diags, err := convert.ArrowToIcebergSchemaWithDiagnostics(schema, options.WithSchemaID(4))
	require.NoError(t, err)

	want := iceberg.NewSchema(4,
		iceberg.NewSchemaField(0, "id", true, iceberg.LongType),
		iceberg.NewSchemaField(0, "score", false, iceberg.IntType),
		iceberg.NewSchemaField(0, "tags", false, iceberg.NewListType(0, false, iceberg.StringType)),
	)
	assert.Equal(t, want, got)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "score", diags.Warnings[0].FieldPath)
	assert.Equal(t, "uint16 -> int", diags.Warnings[0].TypePair)

	placeholders := diags.WithCode(diagnostic.CodePlaceholderID)
	require.Len(t, placeholders, 1)
	assert.Equal(t, diagnostic.DiagnosticInfo, placeholders[0].Severity)
	assert.Equal(t, "field-id: identifiers set to 0", placeholders[0].Message)

	plain, err := convert.ArrowToIcebergSchema(schema)
	require.NoError(t, err)
	assert.Equal(t, 0, plain.ID)
	assert.Equal(t, want.Fields, plain.Fields)
}

func TestArrowToIcebergSchema_Errors(t *testing.T) {
	t.Parallel()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int8},
		{Name: "m", Type: arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String)},
	}, nil)

	got, err := convert.ArrowToIcebergSchema(schema)
	assert.Nil(t, got)

	var convErr *convert.SchemaConversionError
	require.ErrorAs(t, err, &convErr)
	assert.ErrorIs(t, err, node.ErrUnsupportedType)
	assert.Equal(t, "can't convert arrow schema", convErr.Message)

	_, diags, err := convert.ArrowToIcebergSchemaWithDiagnostics(schema,
		options.WithStrict(primitive.LossFieldID))
	require.ErrorIs(t, err, node.ErrLossyConversion)
	require.NotEmpty(t, diags.Errors)
	assert.Equal(t, "a", diags.Errors[0].FieldPath)

	_, err = convert.ArrowToIcebergSchema(nil)
	assert.ErrorIs(t, err, node.ErrNilType)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	schema := iceberg.NewSchema(9,
		iceberg.NewSchemaField(1, "id", true, iceberg.LongType),
		iceberg.NewSchemaField(2, "user", false, iceberg.NewStructType(
			iceberg.NewStructField(3, "name", true, iceberg.StringType),
			iceberg.NewStructField(4, "uuid", true, iceberg.UUIDType),
			iceberg.NewStructField(5, "seen", false, iceberg.TimestamptzType),
		)),
		iceberg.NewSchemaField(6, "tags", false, iceberg.NewListType(7, true, iceberg.DecimalOf(9, 2))),
	)

	back, stable, err := convert.RoundTrip(schema)
	require.NoError(t, err)
	assert.True(t, stable)
	assert.Equal(t, 9, back.ID)

	tags, ok := back.FieldByName("tags")
	require.True(t, ok)
	assert.Equal(t, iceberg.NewListType(0, true, iceberg.DecimalOf(9, 2)), tags.Type)

	user, ok := back.FieldByName("user")
	require.True(t, ok)
	assert.Equal(t, iceberg.FixedOf(16), user.Type.(*iceberg.StructType).Fields[1].Type, "uuid collapses to fixed[16]")
}

func TestRoundTrip_Errors(t *testing.T) {
	t.Parallel()

	withMap := iceberg.NewSchema(0,
		iceberg.NewSchemaField(1, "props", true, iceberg.NewMapType(2, iceberg.StringType, 3, true, iceberg.StringType)),
	)

	_, _, err := convert.RoundTrip(withMap)
	assert.ErrorIs(t, err, node.ErrUnsupportedType)

	_, _, err = convert.RoundTrip(iceberg.NewSchema(0, iceberg.NewSchemaField(1, "d", true, iceberg.DecimalOf(1, 255))))
	assert.ErrorIs(t, err, node.ErrDecimalScale)
}

func TestSchemaConversionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &convert.SchemaConversionError{Message: "can't convert", Err: cause}
	assert.Equal(t, "schema conversion error: can't convert: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &convert.SchemaConversionError{Message: "can't convert"}
	assert.Equal(t, "schema conversion error: can't convert", bare.Error())
	assert.NoError(t, bare.Unwrap())
}

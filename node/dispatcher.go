package node

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"schema-caster/iceberg"
	"schema-caster/internal/diagnostic"
	"schema-caster/options"
	"schema-caster/primitive"
)

// Caster performs reverse (columnar to table-format) conversion. Lossy steps
// are checked against the allowed loss set and reported into the optional
// diagnostics.
type Caster struct {
	allowed primitive.LossEnum
	diags   *diagnostic.Diagnostics
}

// NewCaster creates a reverse caster. diags may be nil.
func NewCaster(opts options.Options, diags *diagnostic.Diagnostics) *Caster {
	return &Caster{allowed: opts.Allowed, diags: diags}
}

// DispatchIceberg classifies a table-format type by shape.
func DispatchIceberg(t iceberg.Type) DispatcherEnum {
	switch t.(type) {
	case iceberg.PrimitiveType:
		return DispatcherPrimitive
	case *iceberg.StructType:
		return DispatcherStruct
	case *iceberg.ListType:
		return DispatcherList
	case *iceberg.MapType:
		return DispatcherMap
	default:
		return DispatcherUnknown
	}
}

// DispatchArrow classifies a columnar type by shape. Every non-nested type is
// reported as primitive; the primitive mapper decides whether it is supported.
func DispatchArrow(dt arrow.DataType) DispatcherEnum {
	switch dt.(type) {
	case nil:
		return DispatcherUnknown
	case *arrow.StructType:
		return DispatcherStruct
	case *arrow.ListType, *arrow.LargeListType, *arrow.FixedSizeListType:
		return DispatcherList
	case *arrow.MapType:
		return DispatcherMap
	default:
		return DispatcherPrimitive
	}
}

// ToArrowType converts a table-format type into its columnar representation.
func ToArrowType(t iceberg.Type) (arrow.DataType, error) {
	switch DispatchIceberg(t) {
	case DispatcherPrimitive:
		return primitiveToArrow(t.(iceberg.PrimitiveType))
	case DispatcherStruct:
		return structToArrow(t.(*iceberg.StructType))
	case DispatcherList:
		return listToArrow(t.(*iceberg.ListType))
	case DispatcherMap:
		return mapToArrow(t.(*iceberg.MapType))
	case DispatcherUnknown:
	}

	if t == nil {
		return nil, ErrNilType
	}

	return nil, fmt.Errorf("%w: table-format type %T", ErrUnsupportedType, t)
}

// FromArrowType converts a columnar type into the table-format type. path is
// the dotted location of the type, used for diagnostics only.
func (c *Caster) FromArrowType(path string, dt arrow.DataType) (iceberg.Type, error) {
	switch DispatchArrow(dt) {
	case DispatcherPrimitive:
		return c.primitiveFromArrow(path, dt)
	case DispatcherStruct:
		return c.structFromArrow(path, dt.(*arrow.StructType))
	case DispatcherList:
		return c.listFromArrow(path, dt.(arrow.ListLikeType))
	case DispatcherMap:
		return c.mapFromArrow(path, dt.(*arrow.MapType))
	case DispatcherUnknown:
	}

	return nil, ErrNilType
}

// check accepts or rejects a lossy step, recording it in the diagnostics.
func (c *Caster) check(path, pair string, loss primitive.LossEnum) error {
	if loss == primitive.LossNone {
		return nil
	}

	rejected := loss &^ c.allowed
	if rejected != primitive.LossNone {
		if c.diags != nil {
			c.diags.AddError(diagnostic.CodeLossyConversion, rejected.String(), pair, path)
		}

		return fmt.Errorf("%w: %s discards %s", ErrLossyConversion, pair, rejected)
	}

	if c.diags != nil {
		c.diags.AddWarning(diagnostic.CodeLossyConversion, loss.String(), pair, path)
	}

	return nil
}

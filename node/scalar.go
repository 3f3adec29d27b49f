package node

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"

	"schema-caster/iceberg"
	"schema-caster/primitive"
	"schema-caster/utils"
)

const (
	uuidByteWidth = 16
	utcZone       = "UTC"
)

func primitiveToArrow(t iceberg.PrimitiveType) (arrow.DataType, error) {
	switch t.Kind {
	default:
		return nil, fmt.Errorf("%w: table-format primitive %s", ErrUnsupportedType, t)

	case primitive.KindBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case primitive.KindInt:
		return arrow.PrimitiveTypes.Int32, nil
	case primitive.KindLong:
		return arrow.PrimitiveTypes.Int64, nil
	case primitive.KindFloat:
		return arrow.PrimitiveTypes.Float32, nil
	case primitive.KindDouble:
		return arrow.PrimitiveTypes.Float64, nil

	case primitive.KindDecimal:
		if !utils.IsInRange(0, t.Scale, math.MaxInt8) {
			return nil, fmt.Errorf("%w: can't convert decimal with scale %d", ErrDecimalScale, t.Scale)
		}

		if !utils.IsInRange(0, t.Precision, math.MaxInt32) {
			return nil, fmt.Errorf("%w: can't convert decimal with precision %d", ErrDecimalPrecision, t.Precision)
		}

		return &arrow.Decimal128Type{Precision: int32(t.Precision), Scale: int32(t.Scale)}, nil

	case primitive.KindDate:
		return arrow.FixedWidthTypes.Date32, nil
	case primitive.KindTime:
		return &arrow.Time64Type{Unit: arrow.Microsecond}, nil
	case primitive.KindTimestamp:
		return &arrow.TimestampType{Unit: arrow.Microsecond}, nil
	case primitive.KindTimestamptz:
		return &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: utcZone}, nil
	case primitive.KindString:
		return arrow.BinaryTypes.String, nil
	case primitive.KindUUID:
		return &arrow.FixedSizeBinaryType{ByteWidth: uuidByteWidth}, nil

	case primitive.KindFixed:
		if !utils.IsInRange(0, t.Length, math.MaxInt32) {
			return nil, fmt.Errorf("%w: can't convert fixed size binary with size %d", ErrFixedSize, t.Length)
		}

		return &arrow.FixedSizeBinaryType{ByteWidth: int(t.Length)}, nil

	case primitive.KindBinary:
		return arrow.BinaryTypes.Binary, nil
	}
}

func (c *Caster) primitiveFromArrow(path string, dt arrow.DataType) (iceberg.Type, error) {
	var (
		out iceberg.PrimitiveType
		err error
	)

	switch t := dt.(type) {
	default:
		return nil, unsupported(dt)

	case *arrow.BooleanType:
		out = iceberg.BooleanType
	case *arrow.Int8Type, *arrow.Int16Type, *arrow.Int32Type, *arrow.Uint8Type, *arrow.Uint16Type:
		out = iceberg.IntType
	case *arrow.Int64Type, *arrow.Uint32Type:
		out = iceberg.LongType
	case *arrow.Float16Type, *arrow.Float32Type:
		out = iceberg.FloatType
	case *arrow.Float64Type:
		out = iceberg.DoubleType

	case *arrow.TimestampType:
		out = iceberg.TimestampType
		if t.TimeZone != "" {
			out = iceberg.TimestamptzType
		}

	case *arrow.Date32Type, *arrow.Date64Type:
		out = iceberg.DateType
	case *arrow.Time32Type:
		out = iceberg.TimeType
	case *arrow.Time64Type:
		if t.Unit == arrow.Nanosecond {
			return nil, unsupported(dt)
		}

		out = iceberg.TimeType

	case *arrow.StringType:
		out = iceberg.StringType
	case *arrow.BinaryType:
		out = iceberg.BinaryType

	case *arrow.FixedSizeBinaryType:
		if t.ByteWidth < 0 {
			return nil, fmt.Errorf("%w: can't convert fixed size binary with negative size %d", ErrFixedSize, t.ByteWidth)
		}

		out = iceberg.FixedOf(uint64(t.ByteWidth))

	case *arrow.Decimal32Type:
		out, err = decimalFromArrow(t.Precision, t.Scale)
	case *arrow.Decimal64Type:
		out, err = decimalFromArrow(t.Precision, t.Scale)
	case *arrow.Decimal128Type:
		out, err = decimalFromArrow(t.Precision, t.Scale)
	}

	if err != nil {
		return nil, err
	}

	loss, ok := primitive.LossOf(dt, out.Kind)
	if !ok {
		return nil, unsupported(dt)
	}

	err = c.check(path, typePair(dt, out.String()), loss)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decimalFromArrow(precision, scale int32) (iceberg.PrimitiveType, error) {
	if scale < 0 {
		return iceberg.PrimitiveType{}, fmt.Errorf("%w: can't convert decimal with negative scale %d", ErrDecimalScale, scale)
	}

	if scale > math.MaxUint8 {
		return iceberg.PrimitiveType{}, fmt.Errorf("%w: can't convert decimal with scale %d", ErrDecimalScale, scale)
	}

	if precision < 0 {
		return iceberg.PrimitiveType{}, fmt.Errorf("%w: can't convert decimal with negative precision %d", ErrDecimalPrecision, precision)
	}

	return iceberg.DecimalOf(uint32(precision), uint8(scale)), nil
}

func unsupported(dt arrow.DataType) error {
	return fmt.Errorf("%w: arrow data type %s has no table-format equivalent", ErrUnsupportedType, dt)
}

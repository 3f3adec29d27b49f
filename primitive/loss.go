package primitive

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// LossEnum names what a reverse (columnar to table-format) mapping discards.
// Values are bit flags and can be combined.
type LossEnum int

const (
	LossWidth        LossEnum = 1 << iota // signed integers, float16 and time32 narrower than the table-format kind
	LossSignedness                        // unsigned integers mapped onto the smallest signed kind holding every value
	LossUnit                              // time or timestamp unit other than microsecond
	LossTimezone                          // concrete zone name replaced by the UTC-adjusted marker
	LossDateWidth                         // date64 (milliseconds) mapped onto day-based date
	LossListKind                          // large or fixed-size list collapsed onto list
	LossDecimalWidth                      // decimal32/decimal64 mapped onto decimal
	LossFieldID                           // field and element identifiers replaced by a placeholder

	LossAll  = (1 << iota) - 1 // all losses combined
	LossNone = 0               // no loss allowed
)

var lossNames = []struct {
	loss LossEnum
	name string
}{
	{LossWidth, "width"},
	{LossSignedness, "signedness"},
	{LossUnit, "unit"},
	{LossTimezone, "timezone"},
	{LossDateWidth, "date-width"},
	{LossListKind, "list-kind"},
	{LossDecimalWidth, "decimal-width"},
	{LossFieldID, "field-id"},
}

// Has reports whether every flag of other is set in l.
func (l LossEnum) Has(other LossEnum) bool {
	return l&other == other
}

// String returns the flag names joined with "|", or "none".
func (l LossEnum) String() string {
	if l == LossNone {
		return "none"
	}

	var parts []string
	for _, ln := range lossNames {
		if l&ln.loss != 0 {
			parts = append(parts, ln.name)
		}
	}

	return strings.Join(parts, "|")
}

// ParseLoss returns the flag for a single loss name as printed by String.
// "all" and "none" are accepted too.
func ParseLoss(name string) (LossEnum, bool) {
	switch name {
	case "all":
		return LossAll, true
	case "none":
		return LossNone, true
	}

	for _, ln := range lossNames {
		if ln.name == name {
			return ln.loss, true
		}
	}

	return LossNone, false
}

// LossNames returns the names of the single loss flags.
func LossNames() []string {
	names := make([]string, 0, len(lossNames))
	for _, ln := range lossNames {
		names = append(names, ln.name)
	}

	return names
}

type ConversionPair struct {
	From arrow.Type
	To   KindEnum
}

// losses of a variant that do not depend on the variant parameters
var conversionLosses map[ConversionPair]LossEnum

func init() {
	conversionLosses = map[ConversionPair]LossEnum{
		{arrow.DATE64, KindDate}: LossDateWidth,
		{arrow.TIME32, KindTime}: LossWidth,

		{arrow.DECIMAL32, KindDecimal}: LossDecimalWidth,
		{arrow.DECIMAL64, KindDecimal}: LossDecimalWidth,
	}

	// numeric pairs are classified by bit width in LossOf, every other
	// supported pair is exact
	for _, pair := range []ConversionPair{
		{arrow.INT8, KindInt},
		{arrow.INT16, KindInt},
		{arrow.INT32, KindInt},
		{arrow.INT64, KindLong},
		{arrow.UINT8, KindInt},
		{arrow.UINT16, KindInt},
		{arrow.UINT32, KindLong},
		{arrow.FLOAT16, KindFloat},
		{arrow.FLOAT32, KindFloat},
		{arrow.BOOL, KindBoolean},
		{arrow.FLOAT64, KindDouble},
		{arrow.DATE32, KindDate},
		{arrow.TIME64, KindTime},
		{arrow.TIMESTAMP, KindTimestamp},
		{arrow.TIMESTAMP, KindTimestamptz},
		{arrow.STRING, KindString},
		{arrow.BINARY, KindBinary},
		{arrow.FIXED_SIZE_BINARY, KindFixed},
		{arrow.DECIMAL128, KindDecimal},
	} {
		conversionLosses[pair] = LossNone
	}
}

// LossOf classifies what mapping dt onto the table-format kind discards.
// Only dt's own variant is classified, nested children are not inspected.
// The boolean result is false when the pair is not a supported mapping.
func LossOf(dt arrow.DataType, to KindEnum) (LossEnum, bool) {
	loss, ok := conversionLosses[ConversionPair{dt.ID(), to}]
	if !ok {
		return LossNone, false
	}

	if to.IsInteger() || to.IsFloat() {
		loss |= numericLoss(dt, to)
	}

	switch t := dt.(type) {
	case *arrow.TimestampType:
		if t.Unit != arrow.Microsecond {
			loss |= LossUnit
		}
		if t.TimeZone != "" && !isUTC(t.TimeZone) {
			loss |= LossTimezone
		}
	case *arrow.Time32Type:
		if t.Unit != arrow.Microsecond {
			loss |= LossUnit
		}
	case *arrow.Time64Type:
		if t.Unit != arrow.Microsecond {
			loss |= LossUnit
		}
	}

	return loss, true
}

// numericLoss compares the source width with the bits of the target kind.
// An unsigned source needs a wider signed kind to hold every value, so only
// its signedness is reported.
func numericLoss(dt arrow.DataType, to KindEnum) LossEnum {
	if arrow.IsUnsignedInteger(dt.ID()) {
		return LossSignedness
	}

	fw, ok := dt.(arrow.FixedWidthDataType)
	if ok && fw.BitWidth() < to.Bits() {
		return LossWidth
	}

	return LossNone
}

// ListLoss classifies the list variant itself.
func ListLoss(dt arrow.DataType) LossEnum {
	switch dt.ID() {
	case arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST:
		return LossListKind
	default:
		return LossNone
	}
}

func isUTC(zone string) bool {
	switch zone {
	case "UTC", "Etc/UTC", "+00:00", "Z":
		return true
	default:
		return false
	}
}

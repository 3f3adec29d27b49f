package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindDecimal // parameterized: precision and scale
	KindDate
	KindTime
	KindTimestamp
	KindTimestamptz
	KindString
	KindUUID
	KindFixed // parameterized: length in bytes
	KindBinary

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = map[KindEnum]string{
	KindBoolean:     "boolean",
	KindInt:         "int",
	KindLong:        "long",
	KindFloat:       "float",
	KindDouble:      "double",
	KindDecimal:     "decimal",
	KindDate:        "date",
	KindTime:        "time",
	KindTimestamp:   "timestamp",
	KindTimestamptz: "timestamptz",
	KindString:      "string",
	KindUUID:        "uuid",
	KindFixed:       "fixed",
	KindBinary:      "binary",
}

// Name returns the table-format spelling of the kind, e.g. "timestamptz".
// Parameterized kinds return their bare name without parameters.
func (k KindEnum) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return ""
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsInteger reports whether k is int or long.
func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindLong:
		return true
	}
}

// IsFloat reports whether k is float or double.
func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

// IsParameterized reports whether values of the kind carry parameters
// (decimal precision/scale, fixed length).
func (k KindEnum) IsParameterized() bool {
	return k == KindDecimal || k == KindFixed
}

// Bits returns the width of an integer or float kind and panics on any other.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer and float kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// FromName returns the kind spelled by name, or zero if name is not a bare
// kind name. Parameterized spellings such as "decimal(9,2)" are not accepted here.
func FromName(name string) KindEnum {
	for kind, kindName := range kindNames {
		if kindName == name && !kind.IsParameterized() {
			return kind
		}
	}

	return 0
}

// Names returns the spellings of all kinds in declaration order.
func Names() []string {
	names := make([]string, 0, KindTotal-1)
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		names = append(names, kind.Name())
	}

	return names
}

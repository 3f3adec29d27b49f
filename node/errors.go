package node

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrDecimalScale     = errors.New("decimal scale out of range")
	ErrDecimalPrecision = errors.New("decimal precision out of range")
	ErrFixedSize        = errors.New("fixed size out of range")
	ErrNilType          = errors.New("nil type")
	ErrLossyConversion  = errors.New("lossy conversion")
)

package node

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"schema-caster/iceberg"
)

// mapToArrow builds a map over a non-nullable "entries" struct of a
// non-nullable "key" and a "value" nullable unless required. Keys are
// reported unsorted.
func mapToArrow(t *iceberg.MapType) (arrow.DataType, error) {
	key, err := ToArrowType(t.Key)
	if err != nil {
		return nil, fmt.Errorf("map key: %w", err)
	}

	value, err := ToArrowType(t.Value)
	if err != nil {
		return nil, fmt.Errorf("map value: %w", err)
	}

	dt := arrow.MapOf(key, value)
	dt.SetItemNullable(!t.ValueRequired)
	dt.KeysSorted = false

	return dt, nil
}

// mapFromArrow rejects every map: no table-format map is synthesized from a
// columnar one.
func (c *Caster) mapFromArrow(_ string, t *arrow.MapType) (iceberg.Type, error) {
	return nil, unsupported(t)
}

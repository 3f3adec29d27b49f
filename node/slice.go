package node

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"

	"schema-caster/iceberg"
	"schema-caster/options"
	"schema-caster/primitive"
)

// ListElementPrefix prefixes the synthesized name of a list child field;
// the element identifier follows in decimal, e.g. "field_1".
const ListElementPrefix = "field_"

// ListElementName returns the columnar child name of a list element.
func ListElementName(elementID int) string {
	return ListElementPrefix + strconv.Itoa(elementID)
}

func listToArrow(t *iceberg.ListType) (arrow.DataType, error) {
	dt, err := ToArrowType(t.Element)
	if err != nil {
		return nil, fmt.Errorf("list element %d: %w", t.ElementID, err)
	}

	return arrow.ListOfField(arrow.Field{
		Name:     ListElementName(t.ElementID),
		Type:     dt,
		Nullable: !t.ElementRequired,
	}), nil
}

// listFromArrow accepts list, large list and fixed-size list alike.
func (c *Caster) listFromArrow(path string, t arrow.ListLikeType) (iceberg.Type, error) {
	err := c.check(path, typePair(t, "list"), primitive.ListLoss(t))
	if err != nil {
		return nil, err
	}

	elem := t.ElemField()

	element, err := c.FromArrowType(elementPath(path), elem.Type)
	if err != nil {
		return nil, fmt.Errorf("list element %q: %w", elem.Name, err)
	}

	return iceberg.NewListType(options.PlaceholderID, !elem.Nullable, element), nil
}

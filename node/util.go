package node

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

const elementSuffix = "[]"

func elementPath(path string) string {
	return path + elementSuffix
}

// typePair describes a mapping for diagnostics, e.g. "uint16 -> int".
func typePair(from arrow.DataType, to string) string {
	return fmt.Sprintf("%s -> %s", from, to)
}

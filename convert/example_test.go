package convert_test

import (
	"fmt"

	"schema-caster/convert"
	"schema-caster/iceberg"
)

func ExampleIcebergToArrowSchema() {
	schema := iceberg.NewSchema(0,
		iceberg.NewSchemaField(1, "id", true, iceberg.IntType),
		iceberg.NewSchemaField(2, "tags", false, iceberg.NewListType(3, false, iceberg.StringType)),
		iceberg.NewSchemaField(4, "ts", false, iceberg.TimestamptzType),
	)

	out, err := convert.IcebergToArrowSchema(schema)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output:
	// schema:
	//   fields: 3
	//     - id: type=int32
	//     - tags: type=list<field_3: utf8, nullable>, nullable
	//     - ts: type=timestamp[us, tz=UTC], nullable
}

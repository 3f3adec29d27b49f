// Package iceberg provides the table-format schema model: field-ID-addressed,
// nested types with explicit per-field nullability.
//
// Key types:
//   - Type: sealed interface implemented by PrimitiveType, *StructType, *ListType and *MapType
//   - StructField / SchemaField: named, identified, required-or-optional fields
//   - Schema: an identified, ordered sequence of root fields
//
// Schemas read and write the Iceberg JSON layout; since JSON is valid YAML,
// the YAML decoder accepts both encodings:
//
//	{"type": "struct", "schema-id": 0, "fields": [
//	  {"id": 1, "name": "id", "required": true, "type": "int"},
//	  {"id": 2, "name": "tags", "required": false, "type": {
//	    "type": "list", "element-id": 3, "element-required": true, "element": "string"}}]}
//
// All values are immutable once constructed. Constructors copy their slice
// arguments, so callers may reuse them.
package iceberg

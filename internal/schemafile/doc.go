// Package schemafile loads and saves schemas on disk.
//
// Table-format schemas are read from JSON or YAML and written in either
// encoding. Arrow schemas are read from an IPC file or stream and written as a
// schema-only IPC stream.
package schemafile

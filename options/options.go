package options

import "schema-caster/primitive"

// PlaceholderID is assigned to every field, list element, map key and map value
// produced by reverse conversion, since the columnar side carries no identifiers.
const PlaceholderID = 0

// Options controls reverse (columnar to table-format) conversion.
type Options struct {
	// Allowed is the set of losses a mapping may incur. A mapping that would
	// discard anything outside of it fails.
	Allowed primitive.LossEnum
	// SchemaID is assigned to the produced schema.
	SchemaID int
}

type Option func(*Options)

// Default allows every loss, so reverse conversion only fails on types
// without a table-format equivalent.
func Default() Options {
	return Options{Allowed: primitive.LossAll}
}

// New applies opts over Default.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Strict reports whether at least one loss is rejected.
func (o Options) Strict() bool {
	return !o.Allowed.Has(primitive.LossAll)
}

// WithStrict rejects every loss except the given ones.
func WithStrict(except ...primitive.LossEnum) Option {
	return func(o *Options) {
		o.Allowed = primitive.LossNone
		for _, loss := range except {
			o.Allowed |= loss
		}
	}
}

func WithSchemaID(id int) Option {
	return func(o *Options) {
		o.SchemaID = id
	}
}

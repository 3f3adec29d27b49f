package convert

// SchemaConversionError is the single error kind returned by the entry
// points. Err holds the first underlying failure.
type SchemaConversionError struct {
	Message string
	Err     error
}

func (e *SchemaConversionError) Error() string {
	if e.Err == nil {
		return "schema conversion error: " + e.Message
	}

	return "schema conversion error: " + e.Message + ": " + e.Err.Error()
}

func (e *SchemaConversionError) Unwrap() error {
	return e.Err
}

func wrap(message string, err error) error {
	if err == nil {
		return nil
	}

	return &SchemaConversionError{Message: message, Err: err}
}

package filter

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

// CheckDocument loads data as an OpenAPI 3 document and validates it.
// Problems are returned for reporting only, the filter output is written
// regardless.
func CheckDocument(data []byte) []error {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return []error{err}
	}

	if err := doc.Validate(context.Background()); err != nil {
		return []error{err}
	}

	return nil
}

package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/types"
)

// Document is an OAS document kept as raw JSON.
// Everything outside components.schemas passes through the filter untouched,
// so the document is never loaded into a typed OpenAPI model.
type Document map[string]any

// NewDocumentFromFile creates a Document from a file path.
func NewDocumentFromFile(filePath string) (Document, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return NewDocumentFromBytes(data)
}

// NewDocumentFromBytes creates a Document from raw JSON contents.
// Numbers are kept as json.Number so they round-trip unchanged.
func NewDocumentFromBytes(data []byte) (Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	return doc, nil
}

// Schemas returns the components.schemas mapping or nil when absent.
func (d Document) Schemas() map[string]any {
	res, _ := types.GetValueByDottedPath(d, "components.schemas").(map[string]any)
	return res
}

// MarshalIndent serializes the document with the given indent width.
func (d Document) MarshalIndent(indent int) ([]byte, error) {
	return json.MarshalIndent(d, "", strings.Repeat(" ", indent))
}

package types

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestGetValueByDottedPath(t *testing.T) {
	data := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Account": "schema",
			},
		},
		"openapi": "3.0.1",
		"tags":    []string{"sobjects"},
	}

	tests := []struct {
		dottedPath string
		expected   any
	}{
		{"components.schemas.Account", "schema"},
		{"components.schemas.Contact", nil},
		{"components.nonexistent.Account", nil},
		{"nonexistent.schemas", nil},
		{"openapi", "3.0.1"},
		{"tags.sobjects", nil},
	}

	for _, test := range tests {
		result := GetValueByDottedPath(data, test.dottedPath)
		if result != test.expected {
			t.Errorf("For path %s, expected %v but got %v", test.dottedPath, test.expected, result)
		}
	}
}

func TestCopyMap(t *testing.T) {
	assert := assert2.New(t)

	src := map[string]any{"a": 1, "b": "two"}
	res := CopyMap(src)

	assert.Equal(src, res)

	res["c"] = true
	assert.NotContains(src, "c")

	assert.Empty(CopyMap(map[string]int(nil)))
}

package filter

import (
	"os"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDocumentValid(t *testing.T) {
	assert := assert2.New(t)

	data, err := os.ReadFile(filepath.Join("testdata", "salesforce.json"))
	require.NoError(t, err)

	assert.Empty(CheckDocument(data))
}

func TestCheckDocumentFilteredStaysValid(t *testing.T) {
	assert := assert2.New(t)

	doc := loadTestDocument(t)
	res := New(nil).Apply(doc, KeepSet{"Account": true, "User": true})

	data, err := res.Doc.MarshalIndent(2)
	require.NoError(t, err)

	assert.Empty(CheckDocument(data))
}

func TestCheckDocumentInvalid(t *testing.T) {
	assert := assert2.New(t)

	assert.NotEmpty(CheckDocument([]byte(`{"not": "openapi"`)))
}

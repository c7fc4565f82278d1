package filter

import (
	"os"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKeepSetLiterals(t *testing.T) {
	assert := assert2.New(t)

	res, err := ResolveKeepSet([]string{"Account", "User", "Account", " Contact ", ""})
	assert.NoError(err)
	assert.Equal(KeepSet{"Account": true, "User": true, "Contact": true}, res)
}

func TestResolveKeepSetFromFile(t *testing.T) {
	assert := assert2.New(t)

	filePath := filepath.Join(t.TempDir(), "objects.txt")
	err := os.WriteFile(filePath, []byte("Account\n\n  User  \nLead\n"), 0o644)
	require.NoError(t, err)

	res, err := ResolveKeepSet([]string{filePath})
	assert.NoError(err)
	assert.Equal(KeepSet{"Account": true, "User": true, "Lead": true}, res)
}

func TestResolveKeepSetMixed(t *testing.T) {
	assert := assert2.New(t)

	filePath := filepath.Join(t.TempDir(), "objects.txt")
	err := os.WriteFile(filePath, []byte("Account\nContact\n"), 0o644)
	require.NoError(t, err)

	res, err := ResolveKeepSet([]string{"User", filePath, "Account"})
	assert.NoError(err)
	assert.Equal(KeepSet{"Account": true, "Contact": true, "User": true}, res)
}

func TestResolveKeepSetMissingFileIsLiteral(t *testing.T) {
	assert := assert2.New(t)

	res, err := ResolveKeepSet([]string{"/no/such/file.txt"})
	assert.NoError(err)
	assert.Equal(KeepSet{"/no/such/file.txt": true}, res)
}

func TestResolveKeepSetIdempotent(t *testing.T) {
	assert := assert2.New(t)

	filePath := filepath.Join(t.TempDir(), "objects.txt")
	err := os.WriteFile(filePath, []byte("Account\nUser\n"), 0o644)
	require.NoError(t, err)

	once, err := ResolveKeepSet([]string{filePath})
	assert.NoError(err)

	twice, err := ResolveKeepSet([]string{filePath, filePath})
	assert.NoError(err)

	assert.Equal(once, twice)
}

func TestKeepSetNames(t *testing.T) {
	assert := assert2.New(t)

	k := KeepSet{"User": true, "Account": true, "Lead": true}
	assert.Equal([]string{"Account", "Lead", "User"}, k.Names())
}

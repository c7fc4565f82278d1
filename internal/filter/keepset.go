package filter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/files"
	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/types"
)

// KeepSet is the set of sObject names to retain during filtering.
// Membership is case-sensitive.
type KeepSet map[string]bool

// Names returns the set members in sorted order.
func (k KeepSet) Names() []string {
	res := make([]string, 0, len(k))
	for name := range k {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// ResolveKeepSet flattens tokens into a KeepSet.
// A token naming an existing regular file is read as newline-separated
// sObject names; any other token is taken as a literal name.
func ResolveKeepSet(tokens []string) (KeepSet, error) {
	var names []string

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		fileInfo, err := os.Stat(token)
		if err == nil && fileInfo.Mode().IsRegular() {
			lines, err := files.ReadLines(token)
			if err != nil {
				return nil, fmt.Errorf("reading keep file %s: %w", token, err)
			}
			names = append(names, lines...)
			continue
		}

		names = append(names, token)
	}

	res := make(KeepSet, len(names))
	for _, name := range types.SliceUnique(names) {
		res[name] = true
	}

	return res, nil
}

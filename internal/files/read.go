package files

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads a newline-separated file and returns its non-empty,
// whitespace-trimmed lines.
func ReadLines(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var res []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			res = append(res, line)
		}
	}

	return res, scanner.Err()
}

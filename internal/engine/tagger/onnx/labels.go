package onnx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func loadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	defer f.Close()
	return readLabels(f)
}

// readLabels parses one tag per line; line i is the tag for logit index i.
// Blank lines are not allowed because they would shift every later index.
func readLabels(r io.Reader) ([]string, error) {
	var labels []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lbl := strings.TrimSpace(scanner.Text())
		if lbl == "" {
			return nil, fmt.Errorf("labels: blank line at index %d", len(labels))
		}
		if seen[lbl] {
			return nil, fmt.Errorf("labels: duplicate label %q", lbl)
		}
		seen[lbl] = true
		labels = append(labels, lbl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("labels: read error: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels: no labels")
	}
	return labels, nil
}

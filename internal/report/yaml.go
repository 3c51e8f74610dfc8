// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// WriteYAML writes the run result, outcomes included, to path.
func WriteYAML(result types.RunResult, path string) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}

// ReadYAML loads a report written by WriteYAML.
func ReadYAML(path string) (types.RunResult, error) {
	var result types.RunResult
	data, err := os.ReadFile(path)
	if err != nil {
		return result, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("parsing run report %s: %w", path, err)
	}
	return result, nil
}

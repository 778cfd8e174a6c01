package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

// LoadRecords reads a yaml document holding a list of field-to-value
// mappings, the row shape consumed by table widgets.
func LoadRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tavlaerrors.NewParseError(path, 0, err)
	}

	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, tavlaerrors.NewParseError(path, extractLine(err), err)
	}

	for i, record := range records {
		if len(record) == 0 {
			return nil, tavlaerrors.NewParseError(path, 0, fmt.Errorf("record %d has no fields", i))
		}
	}

	return records, nil
}

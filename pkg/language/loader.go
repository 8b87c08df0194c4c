package language

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// mappingFile is the on-disk YAML shape of a country→language table.
//
//	default: english
//	countries:
//	  DEU: german
//	  FRA: french
type mappingFile struct {
	Default   string            `yaml:"default"`
	Countries map[string]string `yaml:"countries"`
}

// MappingFromYAML builds a Mapping from YAML data.
func MappingFromYAML(data []byte) (*Mapping, error) {
	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidMapping, err)
	}
	return NewMapping(file.Default, file.Countries)
}

// LoadMappingFile reads a YAML mapping file from the filesystem.
func LoadMappingFile(fsys fs.FS, path string) (*Mapping, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return MappingFromYAML(data)
}

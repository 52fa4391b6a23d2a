package format

import (
	"gopkg.in/yaml.v3"
)

// NewYAMLFormat creates a new format using yaml encoding
func NewYAMLFormat() IFormat {
	return &yamlFormatImpl{}
}

// yamlFormatImpl implements the IFormat interface using gopkg.in/yaml.v3
type yamlFormatImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IFormat)
// --------------------------------------------------------------------------

func (y yamlFormatImpl) Name() string {
	return "yaml"
}

func (y yamlFormatImpl) HumanReadable() bool {
	return true
}

func (y yamlFormatImpl) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (y yamlFormatImpl) Unmarshal(b []byte, v any) error {
	return yaml.Unmarshal(b, v)
}

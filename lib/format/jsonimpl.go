package format

import (
	"encoding/json"
)

// NewJSONFormat creates a new format using json encoding
func NewJSONFormat() IFormat {
	return &jsonFormatImpl{}
}

// jsonFormatImpl implements the IFormat interface using json encoding
type jsonFormatImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IFormat)
// --------------------------------------------------------------------------

func (j jsonFormatImpl) Name() string {
	return "json"
}

func (j jsonFormatImpl) HumanReadable() bool {
	return true
}

func (j jsonFormatImpl) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j jsonFormatImpl) Unmarshal(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

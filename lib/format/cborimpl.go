package format

import (
	"github.com/fxamacker/cbor/v2"
)

// NewCBORFormat creates a new format using deterministic CBOR encoding (RFC 8949 §4.2)
func NewCBORFormat() IFormat {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		Logger.Panicf("invalid cbor encoding options: %v", err)
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		Logger.Panicf("invalid cbor decoding options: %v", err)
	}
	return &cborFormatImpl{em: em, dm: dm}
}

// cborFormatImpl implements the IFormat interface using github.com/fxamacker/cbor/v2
type cborFormatImpl struct {
	em cbor.EncMode
	dm cbor.DecMode
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IFormat)
// --------------------------------------------------------------------------

func (c *cborFormatImpl) Name() string {
	return "cbor"
}

func (c *cborFormatImpl) HumanReadable() bool {
	return false
}

func (c *cborFormatImpl) Marshal(v any) ([]byte, error) {
	return c.em.Marshal(v)
}

func (c *cborFormatImpl) Unmarshal(b []byte, v any) error {
	return c.dm.Unmarshal(b, v)
}

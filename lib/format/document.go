package format

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"github.com/ValentinKolb/dBytes/lib/bytesx"
	"github.com/ValentinKolb/dBytes/lib/codec"
)

// DefaultCodec is used for documents that do not name their encoding
const DefaultCodec = "hex"

var (
	// ErrSizeMismatch is returned by Verify if the size field does not match the data
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrDigestMismatch is returned by Verify if the SHA-256 digest does not match the data
	ErrDigestMismatch = errors.New("digest mismatch")
)

// Document wraps a byte payload with its size and an optional digest. In
// human-readable formats Data and Digest are written as C text.
type Document[C codec.TextCodec] struct {
	Encoding string                                            `json:"encoding" yaml:"encoding" cbor:"encoding"`
	Size     int                                               `json:"size" yaml:"size" cbor:"size"`
	Data     bytesx.Cow[C]                                     `json:"data" yaml:"data" cbor:"data"`
	Digest   bytesx.Option[bytesx.Array[C, [sha256.Size]byte]] `json:"digest" yaml:"digest" cbor:"digest"`
}

// NewDocument creates a document owning data
func NewDocument[C codec.TextCodec](data []byte, withDigest bool) *Document[C] {
	var c C
	doc := &Document[C]{
		Encoding: c.Name(),
		Size:     len(data),
		Data:     bytesx.Owned[C](data),
	}
	if withDigest {
		doc.Digest = bytesx.Some(bytesx.NewArray[C](sha256.Sum256(data)))
	}
	return doc
}

// Verify checks the size and, if present, the digest of the document
func (d *Document[C]) Verify() error {
	if d.Size != d.Data.Len() {
		return fmt.Errorf("%w: document announces %d bytes, data has %d", ErrSizeMismatch, d.Size, d.Data.Len())
	}
	if digest, ok := d.Digest.Get(); ok && digest.V != sha256.Sum256(d.Data.Bytes()) {
		return ErrDigestMismatch
	}
	return nil
}

// --------------------------------------------------------------------------
// Codec independent API
// --------------------------------------------------------------------------

// Decoded is the verified content of a document
type Decoded struct {
	// Codec is the name of the text codec the document was written with
	Codec string
	// Data is the payload. For binary formats it may reference the input.
	Data []byte
	// HasDigest reports whether the document carried a digest
	HasDigest bool
}

// header is the part of a document needed to pick the codec
type header struct {
	Encoding string `json:"encoding" yaml:"encoding" cbor:"encoding"`
}

// EncodeDocument wraps data into a document using the named codec and encodes it with f
func EncodeDocument(f IFormat, codecName string, data []byte, withDigest bool) ([]byte, error) {
	c, err := codec.Lookup(codecName)
	if err != nil {
		return nil, err
	}

	var b []byte
	switch c.(type) {
	case codec.Hex:
		b, err = f.Marshal(NewDocument[codec.Hex](data, withDigest))
	case codec.Base64:
		b, err = f.Marshal(NewDocument[codec.Base64](data, withDigest))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", f.Name(), err)
	}

	countEncoded(f, len(data), len(b))
	Logger.Debugf("encoded %d bytes as %s/%s document: %d bytes", len(data), f.Name(), c.Name(), len(b))
	return b, nil
}

// DecodeDocument decodes and verifies a document encoded with f
func DecodeDocument(f IFormat, b []byte) (Decoded, error) {
	var h header
	if err := f.Unmarshal(b, &h); err != nil {
		return Decoded{}, fmt.Errorf("decoding %s document: %w", f.Name(), err)
	}
	if h.Encoding == "" {
		h.Encoding = DefaultCodec
	}

	c, err := codec.Lookup(h.Encoding)
	if err != nil {
		return Decoded{}, err
	}

	var out Decoded
	switch c.(type) {
	case codec.Hex:
		out, err = decode[codec.Hex](f, b)
	case codec.Base64:
		out, err = decode[codec.Base64](f, b)
	}
	if err != nil {
		return Decoded{}, err
	}

	countDecoded(f, len(b), len(out.Data))
	Logger.Debugf("decoded %s/%s document of %d bytes: %d bytes", f.Name(), out.Codec, len(b), len(out.Data))
	return out, nil
}

// ConvertDocument decodes a document with from and encodes it again with to.
// An empty codecName keeps the codec of the input.
func ConvertDocument(from, to IFormat, codecName string, b []byte) ([]byte, error) {
	d, err := DecodeDocument(from, b)
	if err != nil {
		return nil, err
	}
	if codecName == "" {
		codecName = d.Codec
	}
	return EncodeDocument(to, codecName, d.Data, d.HasDigest)
}

func decode[C codec.TextCodec](f IFormat, b []byte) (Decoded, error) {
	var doc Document[C]
	if err := f.Unmarshal(b, &doc); err != nil {
		return Decoded{}, fmt.Errorf("decoding %s document: %w", f.Name(), err)
	}
	if err := doc.Verify(); err != nil {
		return Decoded{}, err
	}

	var c C
	return Decoded{
		Codec:     c.Name(),
		Data:      doc.Data.Bytes(),
		HasDigest: doc.Digest.Valid,
	}, nil
}

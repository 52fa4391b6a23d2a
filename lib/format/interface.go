package format

// IFormat is the interface for all document formats
type IFormat interface {
	// Name returns the name the format is registered under (e.g. "json")
	Name() string
	// HumanReadable reports whether byte containers are written as hex or base64 text
	HumanReadable() bool
	// Marshal encodes v
	// It returns the encoded byte array and an error if any
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes b into the value v points to
	// Borrowing containers in v may reference b afterwards
	Unmarshal(b []byte, v any) error
}

package serde

import (
	"math"
)

// MaxPreallocHint caps the capacity allocated up front from an untrusted size hint.
// Larger sequences still decode, the buffer grows as elements arrive.
const MaxPreallocHint = 4096

// CautiousHint bounds a size hint to MaxPreallocHint
func CautiousHint(hint int, ok bool) int {
	if !ok || hint < 0 {
		return 0
	}
	return min(hint, MaxPreallocHint)
}

// CollectBytes drains a sequence of numbers into a new byte slice. Elements
// greater than 255 are reported with an error wrapping ErrInvalidValue.
func CollectBytes(seq SeqAccess) ([]byte, error) {
	out := make([]byte, 0, CautiousHint(seq.SizeHint()))
	for {
		v, ok, err := seq.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		if v > math.MaxUint8 {
			return nil, Errorf("%w: sequence element %d at index %d is not a byte", ErrInvalidValue, v, len(out))
		}
		out = append(out, byte(v))
	}
}

// SliceSeq is a SeqAccess over an in-memory slice of numbers
type SliceSeq struct {
	elems []uint64
	hint  int
	pos   int
}

// NewSliceSeq creates a sequence over elems that announces hint elements.
// A negative hint announces no size.
func NewSliceSeq(hint int, elems ...uint64) *SliceSeq {
	return &SliceSeq{elems: elems, hint: hint}
}

func (s *SliceSeq) SizeHint() (int, bool) {
	return s.hint, s.hint >= 0
}

func (s *SliceSeq) Next() (uint64, bool, error) {
	if s.pos >= len(s.elems) {
		return 0, false, nil
	}
	v := s.elems[s.pos]
	s.pos++
	return v, true, nil
}

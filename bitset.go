package evdev

// AttributeSet is a bit-per-code record of event codes, stored in the
// kernel's own bitset encoding: code n lives in byte n/8, bit n%8. Buffers
// returned by the capability and state ioctls can therefore be copied in
// verbatim. Capacity always covers the full static code space of the set's
// event type so codes newer than any observed device are still addressable.
type AttributeSet struct {
	evType EvType
	bits   []byte
}

// NewAttributeSet returns an empty set sized for the code space of t.
func NewAttributeSet(t EvType) *AttributeSet {
	return &AttributeSet{
		evType: t,
		bits:   make([]byte, bitsToBytes(CodeCount(t))),
	}
}

// attributeSetFromBytes builds a set from a kernel-supplied bit buffer.
// The buffer is copied, short buffers are padded to the full code space.
func attributeSetFromBytes(t EvType, buf []byte) *AttributeSet {
	s := NewAttributeSet(t)
	copy(s.bits, buf)
	return s
}

func bitsToBytes(bits int) int {
	return (bits + 7) / 8
}

// bitsSet lists the set bit positions of a raw kernel bit buffer in
// ascending order.
func bitsSet(buf []byte) []int {
	var out []int
	for i, b := range buf {
		if b == 0 {
			continue
		}
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) != 0 {
				out = append(out, i*8+j)
			}
		}
	}
	return out
}

// EvType returns the event type this set records codes for.
func (s *AttributeSet) EvType() EvType {
	return s.evType
}

// Contains reports whether the given code is present in the set.
func (s *AttributeSet) Contains(c EvCode) bool {
	idx, mask := int(c)/8, byte(1)<<(uint(c)%8)
	if idx >= len(s.bits) {
		return false
	}
	return s.bits[idx]&mask != 0
}

// Insert adds the given code to the set. Codes beyond the static code
// space of the set's type are ignored.
func (s *AttributeSet) Insert(c EvCode) {
	idx, mask := int(c)/8, byte(1)<<(uint(c)%8)
	if idx >= len(s.bits) {
		return
	}
	s.bits[idx] |= mask
}

// Remove deletes the given code from the set.
func (s *AttributeSet) Remove(c EvCode) {
	idx, mask := int(c)/8, byte(1)<<(uint(c)%8)
	if idx >= len(s.bits) {
		return
	}
	s.bits[idx] &^= mask
}

// Codes returns all codes present in the set in ascending order.
func (s *AttributeSet) Codes() []EvCode {
	var codes []EvCode
	for i, b := range s.bits {
		if b == 0 {
			continue
		}
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) != 0 {
				codes = append(codes, EvCode(i*8+j))
			}
		}
	}
	return codes
}

// Len returns the number of codes present in the set.
func (s *AttributeSet) Len() int {
	var n int
	for _, b := range s.bits {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// replace swaps the set's contents for a kernel-supplied bit buffer.
func (s *AttributeSet) replace(buf []byte) {
	for i := range s.bits {
		s.bits[i] = 0
	}
	copy(s.bits, buf)
}

// clone returns an independent copy of the set.
func (s *AttributeSet) clone() *AttributeSet {
	c := NewAttributeSet(s.evType)
	copy(c.bits, s.bits)
	return c
}

package bitvec

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// BitVec is a fixed-length sequence of bits backed by a word array.
// Bits beyond Len are always zero, so Key and Equal depend only on the
// logical bit content. Use New to create one; the zero value is an empty
// bit vector.
//
// BitVec is not safe for concurrent mutation.
type BitVec struct {
	length int
	words  []uint64
}

// New returns a BitVec of the given length with all bits unset.
// It panics if length is negative.
func New(length int) *BitVec {
	if length < 0 {
		panic(fmt.Sprintf("bitvec: negative length %d", length))
	}
	return &BitVec{
		length: length,
		words:  make([]uint64, (length+wordBits-1)/wordBits),
	}
}

// Len returns the number of bits.
func (b *BitVec) Len() int { return b.length }

func (b *BitVec) check(i int) {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, b.length))
	}
}

// Set sets bit i to 1.
func (b *BitVec) Set(i int) {
	b.check(i)
	b.words[i/wordBits] |= 1 << (i % wordBits)
}

// Clear sets bit i to 0.
func (b *BitVec) Clear(i int) {
	b.check(i)
	b.words[i/wordBits] &^= 1 << (i % wordBits)
}

// SetBool sets bit i to v.
func (b *BitVec) SetBool(i int, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// Test reports whether bit i is set.
func (b *BitVec) Test(i int) bool {
	b.check(i)
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Flip inverts bit i.
func (b *BitVec) Flip(i int) {
	b.check(i)
	b.words[i/wordBits] ^= 1 << (i % wordBits)
}

// OnesCount returns the number of set bits.
func (b *BitVec) OnesCount() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone returns an independent copy of b.
func (b *BitVec) Clone() *BitVec {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitVec{length: b.length, words: words}
}

// Equal reports whether b and o have the same length and bit content.
func (b *BitVec) Equal(o *BitVec) bool {
	if b.length != o.length {
		return false
	}
	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical string form of the bit content, suitable as a
// map key. Two bit vectors produce the same key exactly when Equal
// reports true.
func (b *BitVec) Key() string {
	buf := make([]byte, 0, 8+8*len(b.words))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(b.length))
	for _, w := range b.words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// String renders the bits as a "0"/"1" string, bit 0 first.
func (b *BitVec) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

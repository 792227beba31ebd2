package shared

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ValueObject is implemented by immutable types whose identity is their field values.
// EqualityComponents returns those values in a fixed order.
type ValueObject interface {
	EqualityComponents() []any
}

// ValueObjectsEqual returns true if a and b have the same dynamic type
// and pairwise-equal equality components
func ValueObjectsEqual(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	left := a.EqualityComponents()
	right := b.EqualityComponents()
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !reflect.DeepEqual(left[i], right[i]) {
			return false
		}
	}
	return true
}

// ValueObjectHash combines the equality components of v into an order-sensitive hash
func ValueObjectHash(v ValueObject) uint64 {
	if v == nil {
		return 0
	}
	d := xxhash.New()
	var idx [8]byte
	for i, c := range v.EqualityComponents() {
		binary.LittleEndian.PutUint64(idx[:], uint64(i))
		_, _ = d.Write(idx[:])
		if c == nil {
			_, _ = d.WriteString("<nil>")
			continue
		}
		_, _ = fmt.Fprintf(d, "%T:%v", c, c)
	}
	return d.Sum64()
}

package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/samber/lo"
)

// NumCars is the number of car slots in every per-car array.
const NumCars = 22

// decodeWire reads payload into dst, which must be a pointer to a fixed size
// value. The payload has to match the size of dst exactly.
func decodeWire(name string, payload []byte, dst any) error {
	if want := binary.Size(dst); len(payload) != want {
		return &LengthError{Packet: name, Want: want, Got: len(payload)}
	}
	_, err := binary.Decode(payload, binary.LittleEndian, dst)
	return err
}

func encodeWire(src any) ([]byte, error) {
	return binary.Append(nil, binary.LittleEndian, src)
}

// cString returns the content of a NUL terminated, NUL padded byte field.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// putCString copies s into dst, NUL padded. Names using the full width are
// written without terminator, the game does the same.
func putCString(dst []byte, s string) {
	clear(dst)
	copy(dst, s)
}

// fill copies src into a zero initialized array slot, dropping what does not fit.
func fill[T any](dst []T, src []T) {
	clear(dst)
	copy(dst, src)
}

// prefix returns the first n elements of s, bounded by the length of s.
func prefix[T any](s []T, n int) []T {
	return lo.Slice(s, 0, n)
}

func mapSlice[T, R any](s []T, fn func(T) R) []R {
	return lo.Map(s, func(item T, _ int) R { return fn(item) })
}

func fieldsOf[T interface{ Fields() map[string]any }](s []T) []map[string]any {
	return mapSlice(s, func(v T) map[string]any { return v.Fields() })
}

// count clamps a slice length into the single byte count fields of the format.
func count[T any](s []T, capacity int) uint8 {
	return uint8(min(len(s), capacity))
}

// setOpt adds v to the projection if it is set.
func setOpt[T any](m map[string]any, key string, v omit.Val[T]) {
	if val, ok := v.Get(); ok {
		m[key] = val
	}
}

// setOptWith adds the converted v to the projection if it is set.
func setOptWith[T, R any](m map[string]any, key string, v omit.Val[T], fn func(T) R) {
	if val, ok := v.Get(); ok {
		m[key] = fn(val)
	}
}

// orZero returns the value of v or the zero value of T when v is unset.
func orZero[T any](v omit.Val[T]) T {
	val, _ := v.Get()
	return val
}

// enumString renders interface based enumerations, "" for nil values.
func enumString[T fmt.Stringer](v T) string {
	var s fmt.Stringer = v
	if s == nil {
		return ""
	}
	return v.String()
}

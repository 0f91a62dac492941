// ABOUTME: Order-preserving key encoders for index entries.
// ABOUTME: Encoded values compare bytewise in the same order as their source values.
package store

import (
	"encoding/binary"
	"math"
	"time"
)

// String encodes a string index value. Lexicographic byte order.
func String(s string) []byte {
	return []byte(s)
}

// Bool encodes a bool index value; false sorts before true.
func Bool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

// Uint encodes an unsigned integer index value.
func Uint(u uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, u)
	return b
}

// Int encodes a signed integer index value. The sign bit is flipped so
// negative values sort before positive ones.
func Int(i int64) []byte {
	return Uint(uint64(i) ^ (1 << 63))
}

// Float encodes a float64 index value using the standard IEEE-754 order
// fix: positive values get the sign bit set, negative values are inverted.
func Float(f float64) []byte {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	return Uint(bits)
}

// Time encodes a timestamp index value with nanosecond precision.
func Time(t time.Time) []byte {
	return Int(t.UTC().UnixNano())
}

const idLen = 8

func encodeID(id uint64) []byte {
	return Uint(id)
}

func decodeID(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

func rowPrefix(table string) []byte {
	return []byte("r:" + table + ":")
}

func rowKey(table string, id uint64) []byte {
	return append(rowPrefix(table), encodeID(id)...)
}

func indexPrefix(table, field string) []byte {
	return []byte("x:" + table + ":" + field + "\x00")
}

func indexKey(table, field string, value []byte, id uint64) []byte {
	k := indexPrefix(table, field)
	k = append(k, value...)
	k = append(k, 0)
	return append(k, encodeID(id)...)
}

// indexValue extracts the encoded value portion of an index key given its
// field prefix. The id occupies the trailing 8 bytes, preceded by a zero
// separator, so the value is parsed by position from both ends.
func indexValue(key, prefix []byte) []byte {
	return key[len(prefix) : len(key)-idLen-1]
}

func indexID(key []byte) uint64 {
	return decodeID(key[len(key)-idLen:])
}

// keyUpperBound returns the first key after every key sharing the prefix,
// used as the seek target for reverse iteration.
func keyUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return append(end, 0xFF)
}

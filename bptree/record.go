package bptree

import "github.com/golang/snappy"

// Kind tags the type of value a Record holds.
type Kind int

const (
	Char Kind = iota
	Int
	Float
	Data
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Data:
		return "data"
	default:
		return "unknown"
	}
}

// dataCompressThreshold is the payload size above which MakeData snappy-
// compresses the bytes before storing them. Small payloads aren't worth the
// compression overhead, mirroring the spirit of DB_FLAG_PREF_SPEED vs
// DB_FLAG_PREF_SIZE in ytree.h — this package always prefers speed below
// the threshold and size above it.
const dataCompressThreshold = 64

// Record is a small tagged value carrying one of {Char, Int, Float, Data}.
// A Record is created by the caller, handed to the tree at Insert, and
// thereafter owned by the tree: callers must not mutate or free it after
// insertion. Size is meaningful only for Data records, where it holds the
// length of the original (uncompressed) payload.
type Record struct {
	Kind  Kind
	Char  byte
	Int   int32
	Float float32

	data       []byte // for Kind == Data; possibly snappy-compressed
	compressed bool
	Size       int // original, uncompressed length for Kind == Data
}

// MakeChar builds a Char-kind record.
func MakeChar(c byte) *Record {
	return &Record{Kind: Char, Char: c}
}

// MakeInt builds an Int-kind record.
func MakeInt(i int32) *Record {
	return &Record{Kind: Int, Int: i}
}

// MakeFloat builds a Float-kind record.
func MakeFloat(f float32) *Record {
	return &Record{Kind: Float, Float: f}
}

// MakeData builds a Data-kind record from an opaque byte payload. Payloads
// larger than dataCompressThreshold are stored snappy-compressed; Bytes
// transparently decompresses them back out.
func MakeData(b []byte) *Record {
	r := &Record{Kind: Data, Size: len(b)}
	if len(b) > dataCompressThreshold {
		r.data = snappy.Encode(nil, b)
		r.compressed = true
	} else {
		r.data = append([]byte(nil), b...)
	}
	return r
}

// Bytes returns the Data record's payload, decompressing it if necessary.
// It returns nil for non-Data records.
func (r *Record) Bytes() []byte {
	if r == nil || r.Kind != Data {
		return nil
	}
	if !r.compressed {
		return r.data
	}
	out, err := snappy.Decode(nil, r.data)
	if err != nil {
		// data was produced by MakeData in this package; a decode
		// failure here means memory corruption, not a recoverable
		// runtime condition.
		panicStructural("corrupt compressed data record: " + err.Error())
	}
	return out
}

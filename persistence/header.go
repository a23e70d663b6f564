package persistence

import (
	"encoding/binary"
	"errors"
	"io"
)

// magic identifies a ytree-format index file. Matches the 8-byte constant
// ytree.c writes at offset 0 of every saved file.
var magic = [8]byte{'Y', 'T', 'R', 'E', 'E', '0', '1', 0}

// schemaSlotSize is the on-disk size of one schema entry: {id uint16,
// type uint8, root_offset uint32, order uint16}.
const schemaSlotSize = 2 + 1 + 4 + 2

// ErrNoReader is returned by ReadHeader. ytree.c never defines a restore
// routine for the layout implied by its env_t/db_t structs, so this
// package doesn't invent read-back semantics that were never specified.
var ErrNoReader = errors.New("persistence: no header reader implemented")

// DefaultPageSize is the page size ytree.c's header uses when none is
// given explicitly.
const DefaultPageSize = 1024

// Header is the fixed-size preamble of a saved index file.
type Header struct {
	SchemaOffset uint32
	PageSize     uint16
	Flags        uint8
}

// WriteHeader writes the 8-byte magic, the fixed header fields, and a run
// of zeroed schema slots sized to fill one page. The schema area is left
// entirely zeroed, matching the layout ytree.h's env_t/db_t structs imply:
// order is accepted so callers can later extend the schema area without
// changing this function's signature, but nothing is written into it yet
// — there is no upstream behavior to port for a populated slot. pageSize
// defaults to DefaultPageSize when 0 is passed.
func WriteHeader(w io.Writer, order int, flags byte, pageSize ...uint16) error {
	ps := uint16(DefaultPageSize)
	if len(pageSize) > 0 && pageSize[0] != 0 {
		ps = pageSize[0]
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}

	h := Header{
		SchemaOffset: uint32(len(magic)),
		PageSize:     ps,
		Flags:        flags,
	}
	if err := binary.Write(w, binary.LittleEndian, h.SchemaOffset); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.PageSize); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Flags); err != nil {
		return err
	}

	numSlots := int(ps) / 128
	slot := make([]byte, schemaSlotSize)
	for i := 0; i < numSlots; i++ {
		if _, err := w.Write(slot); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeader always fails: see ErrNoReader.
func ReadHeader(_ io.Reader) (*Header, error) {
	return nil, ErrNoReader
}

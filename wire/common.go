// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/palladium-core/plmd/chainhash"
)

var littleEndian = binary.LittleEndian

// uint32Time represents a unix timestamp encoded with a uint32 on the wire.
type uint32Time time.Time

// readElement reads the next element from r using little endian encoding.
func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		rv, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		*e = int32(rv)
		return nil

	case *uint32:
		rv, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *int64:
		rv, err := binarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return err
		}
		*e = int64(rv)
		return nil

	case *uint64:
		rv, err := binarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *byte:
		rv, err := binarySerializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = rv
		return nil

	case *bool:
		rv, err := binarySerializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = rv != 0
		return nil

	case *uint32Time:
		rv, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(rv), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return binary.Read(r, littleEndian, element)
}

// readElements reads each element from r, returning on the first error.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the next element to w using little endian encoding.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return binarySerializer.PutUint32(w, littleEndian, uint32(e))

	case uint32:
		return binarySerializer.PutUint32(w, littleEndian, e)

	case int64:
		return binarySerializer.PutUint64(w, littleEndian, uint64(e))

	case uint64:
		return binarySerializer.PutUint64(w, littleEndian, e)

	case byte:
		return binarySerializer.PutUint8(w, e)

	case bool:
		var v byte
		if e {
			v = 1
		}
		return binarySerializer.PutUint8(w, v)

	case uint32Time:
		return binarySerializer.PutUint32(w, littleEndian, uint32(time.Time(e).Unix()))

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	}

	return binary.Write(w, littleEndian, element)
}

// writeElements writes each element to w, returning on the first error.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

// readVarInt reads a variable-length integer using the CompactSize encoding
// and returns it as a uint64.
func readVarInt(r io.Reader) (uint64, error) {
	discriminant, err := binarySerializer.Uint8(r)
	if err != nil {
		return 0, err
	}

	switch discriminant {
	case 0xff:
		rv, err := binarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return 0, err
		}
		return rv, nil

	case 0xfe:
		rv, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return 0, err
		}
		return uint64(rv), nil

	case 0xfd:
		rv, err := binarySerializer.Uint16(r, littleEndian)
		if err != nil {
			return 0, err
		}
		return uint64(rv), nil

	default:
		return uint64(discriminant), nil
	}
}

// writeVarInt writes a number as a variable-length integer using the
// CompactSize encoding.
func writeVarInt(w io.Writer, val uint64) error {
	if val < 0xfd {
		return binarySerializer.PutUint8(w, uint8(val))
	}

	if val <= 0xffff {
		if err := binarySerializer.PutUint8(w, 0xfd); err != nil {
			return err
		}
		return binarySerializer.PutUint16(w, littleEndian, uint16(val))
	}

	if val <= 0xffffffff {
		if err := binarySerializer.PutUint8(w, 0xfe); err != nil {
			return err
		}
		return binarySerializer.PutUint32(w, littleEndian, uint32(val))
	}

	if err := binarySerializer.PutUint8(w, 0xff); err != nil {
		return err
	}
	return binarySerializer.PutUint64(w, littleEndian, val)
}

// readVarBytes reads a variable-length byte array prefixed with its length
// encoded as a CompactSize integer, enforcing maxAllowed as a sanity limit.
func readVarBytes(r io.Reader, maxAllowed uint64, fieldName string) ([]byte, error) {
	count, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > maxAllowed {
		return nil, messageError("readVarBytes", "%s exceeds max length - "+
			"indicates %d, but max allowed is %d", fieldName, count, maxAllowed)
	}

	b := make([]byte, count)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// writeVarBytes writes a variable-length byte array prefixed with its length
// encoded as a CompactSize integer.
func writeVarBytes(w io.Writer, bytes []byte) error {
	if err := writeVarInt(w, uint64(len(bytes))); err != nil {
		return err
	}
	_, err := w.Write(bytes)
	return err
}

package serialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/hybridgate/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// MaxVarBytesLength is the largest byte slice ReadVarBytes accepts. It bounds
// the allocation a malformed length prefix can trigger.
const MaxVarBytesLength = 1 << 20

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case int32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(e))
		return write(w, buf[:4])

	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], e)
		return write(w, buf[:4])

	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		return write(w, buf[:])

	case uint64:
		binary.LittleEndian.PutUint64(buf[:], e)
		return write(w, buf[:])

	case uint8:
		buf[0] = e
		return write(w, buf[:1])

	case externalapi.ProofType:
		buf[0] = uint8(e)
		return write(w, buf[:1])

	case bool:
		if e {
			buf[0] = 0x01
		}
		return write(w, buf[:1])

	case externalapi.DomainHash:
		return write(w, e[:])

	case *externalapi.DomainHash:
		return write(w, e[:])

	case []byte:
		return WriteVarBytes(w, e)
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

func write(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return errors.WithStack(err)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVarBytes writes b prefixed by its length as a uint64
func WriteVarBytes(w io.Writer, b []byte) error {
	err := WriteElement(w, uint64(len(b)))
	if err != nil {
		return err
	}
	return write(w, b)
}

// ReadVarBytes reads a byte slice written by WriteVarBytes
func ReadVarBytes(r io.Reader) ([]byte, error) {
	var length uint64
	err := ReadElement(r, &length)
	if err != nil {
		return nil, err
	}
	if length > MaxVarBytesLength {
		return nil, errors.Wrapf(errMalformed, "byte slice of length %d is longer than the maximum %d",
			length, MaxVarBytesLength)
	}
	b := make([]byte, length)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case *int32:
		if err := readFull(r, buf[:4]); err != nil {
			return err
		}
		*e = int32(binary.LittleEndian.Uint32(buf[:4]))
		return nil

	case *uint32:
		if err := readFull(r, buf[:4]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:4])
		return nil

	case *int64:
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:]))
		return nil

	case *uint64:
		if err := readFull(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *uint8:
		if err := readFull(r, buf[:1]); err != nil {
			return err
		}
		*e = buf[0]
		return nil

	case *externalapi.ProofType:
		if err := readFull(r, buf[:1]); err != nil {
			return err
		}
		*e = externalapi.ProofType(buf[0])
		return nil

	case *bool:
		if err := readFull(r, buf[:1]); err != nil {
			return err
		}
		switch buf[0] {
		case 0x00:
			*e = false
		case 0x01:
			*e = true
		default:
			return errors.Wrapf(errMalformed, "in order to keep serialization canonical, true has to"+
				" always be 0x01")
		}
		return nil

	case *externalapi.DomainHash:
		return readFull(r, e[:])

	case *[]byte:
		b, err := ReadVarBytes(r)
		if err != nil {
			return err
		}
		*e = b
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return errors.WithStack(err)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}

package compiler

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/younwookim/framepad/internal/application/mapper"
)

// Binary layout: "NES", version byte, then one record per frame
// (4 byte big-endian frame number, 1 byte controller state).
const (
	BinaryVersion = 0x01
	HeaderSize    = 4
	RecordSize    = 5
)

var binaryMagic = [3]byte{'N', 'E', 'S'}

// Decode errors
var (
	ErrTruncated          = errors.New("binary data shorter than header")
	ErrInvalidHeader      = errors.New("invalid NES binary header")
	ErrUnsupportedVersion = errors.New("unsupported NES binary version")
)

// ToBinary encodes controller data. Frame numbers are truncated to 32 bits.
func (c *NESCompiler) ToBinary(data mapper.NESInputData) []byte {
	buf := make([]byte, HeaderSize+len(data.Frames)*RecordSize)

	copy(buf, binaryMagic[:])
	buf[3] = BinaryVersion

	for i, fi := range data.Frames {
		offset := HeaderSize + i*RecordSize
		binary.BigEndian.PutUint32(buf[offset:], uint32(fi.Frame))
		buf[offset+4] = fi.Buttons
	}

	return buf
}

// FromBinary decodes controller data. Frame order is not validated.
// Trailing bytes that do not form a whole record are ignored.
func (c *NESCompiler) FromBinary(buf []byte) (mapper.NESInputData, error) {
	if len(buf) < HeaderSize {
		return mapper.NESInputData{}, fmt.Errorf("%w: %d bytes", ErrTruncated, len(buf))
	}
	if [3]byte(buf[:3]) != binaryMagic {
		return mapper.NESInputData{}, fmt.Errorf("%w: % x", ErrInvalidHeader, buf[:3])
	}
	if buf[3] != BinaryVersion {
		return mapper.NESInputData{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, buf[3])
	}

	count := (len(buf) - HeaderSize) / RecordSize
	data := mapper.NESInputData{
		Frames: make([]mapper.NESFrameInput, count),
	}

	for i := 0; i < count; i++ {
		offset := HeaderSize + i*RecordSize
		data.Frames[i] = mapper.NESFrameInput{
			Frame:   int(binary.BigEndian.Uint32(buf[offset:])),
			Buttons: buf[offset+4],
		}
	}

	return data, nil
}

package asset

import (
	"errors"
	"fmt"
	"io"

	"glbviewer/common/rw"
)

const (
	GLBMagic   = 'F'<<24 | 'T'<<16 | 'l'<<8 | 'g' // "glTF" little endian
	GLBVersion = 2

	chunkJSON = 'N'<<24 | 'O'<<16 | 'S'<<8 | 'J' // "JSON"
)

var ErrNotGLB = errors.New("not a binary glTF container")

type Header struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// SniffGLB reads the 12 byte container header plus the first chunk header
// and checks they describe a version 2 GLB whose first chunk is JSON.
func SniffGLB(r io.Reader) (Header, error) {
	var h Header
	br := rw.NewBinReader(r)
	words := make([]uint32, 5)
	if err := br.ReadUInt32s(words); err != nil {
		return h, fmt.Errorf("%w: short header: %v", ErrNotGLB, err)
	}
	h = Header{Magic: words[0], Version: words[1], Length: words[2]}
	if h.Magic != GLBMagic {
		return h, fmt.Errorf("%w: bad magic %#08x", ErrNotGLB, h.Magic)
	}
	if h.Version != GLBVersion {
		return h, fmt.Errorf("%w: unsupported version %d", ErrNotGLB, h.Version)
	}
	if words[4] != chunkJSON {
		return h, fmt.Errorf("%w: first chunk is %#08x, want JSON", ErrNotGLB, words[4])
	}
	return h, nil
}

package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
	src     io.Reader
}

// NewBinReader reads little-endian values from r.
func NewBinReader(r io.Reader) *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8), src: r}
}

func NewBinReaderBytes(data []byte) *ReaderWriter {
	return NewBinReader(bytes.NewReader(data))
}

func NewBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func (w *ReaderWriter) read(n int) ([]byte, error) {
	if w.src == nil {
		return nil, fmt.Errorf("rw: reader not initialised")
	}
	if _, err := io.ReadFull(w.src, w.dataBuf[:n]); err != nil {
		return nil, err
	}
	return w.dataBuf[:n], nil
}

func (w *ReaderWriter) ReadUInt16() (uint16, error) {
	b, err := w.read(2)
	if err != nil {
		return 0, err
	}
	return w.order.Uint16(b), nil
}

func (w *ReaderWriter) ReadUInt32() (uint32, error) {
	b, err := w.read(4)
	if err != nil {
		return 0, err
	}
	return w.order.Uint32(b), nil
}

func (w *ReaderWriter) ReadUInt32s(value []uint32) (err error) {
	for i := range value {
		if value[i], err = w.ReadUInt32(); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReaderWriter) ReadFloat32() (float32, error) {
	v, err := w.ReadUInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (w *ReaderWriter) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:2])
}

func (w *ReaderWriter) WriteUInt32(v uint32) {
	w.order.PutUint32(w.dataBuf, v)
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteUInt32s(value []uint32) {
	for _, v := range value {
		w.WriteUInt32(v)
	}
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.WriteUInt32(math.Float32bits(v))
}

func (w *ReaderWriter) GetWriteBytes() (res []byte) {
	return w.rw.Bytes()
}

func (w *ReaderWriter) ChangeOrder(order binary.ByteOrder) {
	w.order = order
}

func (w *ReaderWriter) Size() int {
	return w.rw.Len()
}

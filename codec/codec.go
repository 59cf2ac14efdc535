// SPDX-License-Identifier: MIT

// Package codec - fixed binary layout for a single matrix.
//
// Layout (native byte order, 4-byte unsigned integers):
//
//	[u32 name_len][name_len bytes, NUL-terminated][u32 rows][u32 cols][rows*cols * u32 data][1 sentinel byte]
//
// name_len counts the trailing NUL. The sentinel byte carries no meaning;
// it is written as 0 and not required when decoding.
//
// Complexity quicksheet:
//   - Marshal/Encode/Decode: O(r*c) time and one O(r*c) buffer.
//   - Decode reads the data section in fixed-size chunks, so a header that
//     claims more data than the stream holds costs at most one chunk.

package codec

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/katalvlaran/matshell/matrix"
)

const (
	wordSize     = 4
	sentinelByte = 0
	chunkWords   = 16 << 10

	stageNameLen = "name_len"
	stageName    = "name"
	stageRows    = "rows"
	stageCols    = "cols"
	stageData    = "data"
)

// byteOrder matches the host, as the format requires.
var byteOrder = binary.NativeEndian

// EncodedSize returns the number of bytes Marshal produces for m.
func EncodedSize(m *matrix.Matrix) int {
	return wordSize + len(m.Name()) + 1 + 2*wordSize + wordSize*m.Len() + 1
}

// Marshal builds the complete on-disk record for m.
func Marshal(m *matrix.Matrix) ([]byte, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, formatError("encode", "", "", err)
	}

	name := m.Name()
	buf := make([]byte, 0, EncodedSize(m))
	buf = byteOrder.AppendUint32(buf, uint32(len(name)+1))
	buf = append(buf, name...)
	buf = append(buf, 0)
	buf = byteOrder.AppendUint32(buf, m.Rows())
	buf = byteOrder.AppendUint32(buf, m.Cols())
	for _, v := range m.Data() {
		buf = byteOrder.AppendUint32(buf, v)
	}
	buf = append(buf, sentinelByte)

	return buf, nil
}

// Encode writes the record for m to w in a single Write call.
// A short write is a failure; there is no retry.
func Encode(w io.Writer, m *matrix.Matrix) error {
	return encode(w, "", m)
}

func encode(w io.Writer, path string, m *matrix.Matrix) error {
	buf, err := Marshal(m)
	if err != nil {
		return err
	}

	return writeRecord(w, path, buf)
}

// writeRecord issues one bulk Write of buf.
func writeRecord(w io.Writer, path string, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return ioError("write", path, "", err)
	}
	if n != len(buf) {
		return ioError("write", path, "", io.ErrShortWrite)
	}

	return nil
}

// Decode reads one record from r and returns a new Matrix.
//
// Implementation:
//   - Stage 1: name_len, bounded by matrix.MaxNameLen+1 (NUL included).
//   - Stage 2: exactly name_len bytes; the last must be NUL.
//   - Stage 3: rows, cols; shape validated before the data buffer is allocated.
//   - Stage 4: exactly rows*cols words, then matrix.New + Load.
//
// Any short read at any stage fails with KindShortRead; no partial matrix
// is ever returned.
func Decode(r io.Reader) (*matrix.Matrix, error) {
	return decode(r, "")
}

func decode(r io.Reader, path string) (*matrix.Matrix, error) {
	var word [wordSize]byte
	readWord := func(stage string) (uint32, error) {
		if _, err := io.ReadFull(r, word[:]); err != nil {
			return 0, ioError("read", path, stage, err)
		}
		return byteOrder.Uint32(word[:]), nil
	}

	nameLen, err := readWord(stageNameLen)
	if err != nil {
		return nil, err
	}
	if nameLen == 0 || nameLen > matrix.MaxNameLen+1 {
		return nil, formatError("decode", path, stageNameLen, ErrNameLength)
	}

	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, ioError("read", path, stageName, err)
	}
	if nameBuf[nameLen-1] != 0 {
		return nil, formatError("decode", path, stageName, ErrUnterminatedName)
	}
	name := string(nameBuf[:nameLen-1])

	rows, err := readWord(stageRows)
	if err != nil {
		return nil, err
	}
	cols, err := readWord(stageCols)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, formatError("decode", path, stageCols, err)
	}

	values, err := readData(r, int(rows)*int(cols))
	if err != nil {
		return nil, ioError("read", path, stageData, err)
	}

	m, err := matrix.New(name, rows, cols)
	if err != nil {
		return nil, formatError("decode", path, stageName, err)
	}
	if err := m.Load(values); err != nil {
		return nil, formatError("decode", path, stageData, err)
	}

	return m, nil
}

// readData reads n words in chunks of at most chunkWords, so memory grows
// with the bytes actually present rather than with the header's claim.
func readData(r io.Reader, n int) ([]uint32, error) {
	values := make([]uint32, 0, min(n, chunkWords))
	buf := make([]byte, wordSize*min(n, chunkWords))
	for len(values) < n {
		k := min(n-len(values), chunkWords)
		if _, err := io.ReadFull(r, buf[:k*wordSize]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		for i := 0; i < k; i++ {
			values = append(values, byteOrder.Uint32(buf[i*wordSize:]))
		}
	}

	return values, nil
}

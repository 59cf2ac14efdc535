// SPDX-License-Identifier: MIT

package codec

import (
	"os"

	"github.com/katalvlaran/matshell/matrix"
)

// fileMode is the permission used when WriteFile creates a file.
const fileMode = 0o644

// WriteFile creates or truncates path and writes the record for m.
// m is validated before the file is touched. A failed Close is a failure.
func WriteFile(path string, m *matrix.Matrix) error {
	buf, err := Marshal(m)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return ioError("open", path, "", err)
	}
	err = writeRecord(f, path, buf)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = ioError("close", path, "", cerr)
	}

	return err
}

// ReadFile opens path and decodes exactly one record from it.
func ReadFile(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, "", err)
	}
	m, err := decode(f, path)
	if cerr := f.Close(); cerr != nil && err == nil {
		return nil, ioError("close", path, "", cerr)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

package bmp

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFileBytes serializes a complete BMP file from its parts. The pixel
// data is taken verbatim, so tests control row order and padding bytes.
func buildFileBytes(t *testing.T, h fileHeader, palette colorTable, pixels []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &h))
	if len(palette) > 0 {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, palette))
	}
	buf.Write(pixels)
	return buf.Bytes()
}

// writeTempBMP puts raw file bytes into a fresh temp file and returns its path.
func writeTempBMP(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bmp")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// tempPath returns a path inside a fresh temp dir without creating the file.
func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

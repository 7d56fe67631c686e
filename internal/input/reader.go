package input

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF-16 byte order marks. A UTF-8 BOM (EF BB BF) is intentionally not
// stripped: it decodes to U+FEFF, which is itself a reportable hidden
// character and subject to the Cf removal rule when cleaning.
var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadFile reads and decodes the file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return Decode(data)
}

// ReadAll reads and decodes everything from r, typically stdin.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return Decode(data)
}

// Decode converts raw input bytes to a UTF-8 string. Inputs starting with
// a UTF-16 BOM are decoded with the matching endianness; everything else
// is taken as UTF-8 unchanged (invalid bytes surface as U+FFFD when the
// scanner decodes them, per the replacement-character policy).
func Decode(data []byte) (string, error) {
	var enc unicode.Endianness
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = unicode.LittleEndian
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = unicode.BigEndian
	default:
		return string(data), nil
	}

	decoder := unicode.UTF16(enc, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16 input: %w", err)
	}
	return string(decoded), nil
}

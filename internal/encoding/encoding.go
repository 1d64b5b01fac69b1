// Package encoding converts file bytes between legacy code pages and the
// UTF-8 the rest of the tool works in.
package encoding

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Default is the encoding assumed when none is configured.
const Default = "utf8"

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// resolve maps an encoding name to its code page, nil meaning UTF-8.
func resolve(name string) (*charmap.Charmap, error) {
	switch name {
	case "", "utf8":
		return nil, nil
	case "cp437":
		return charmap.CodePage437, nil
	case "cp850":
		return charmap.CodePage850, nil
	case "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}

// ToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	cm, err := resolve(sourceEncoding)
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return stripUTF8BOM(data), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// FromUTF8 converts UTF-8 data to the target encoding.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
func FromUTF8(data []byte, targetEncoding string) ([]byte, error) {
	cm, err := resolve(targetEncoding)
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return data, nil
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewEncoder())
	encodedData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return encodedData, nil
}

package textdoc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// NormalizeUTF8 converts content to UTF-8 without a byte order mark.
// UTF-16 input, detected by its BOM, is transcoded; a UTF-8 BOM is
// stripped; anything else is returned unchanged. Callers that read files
// from disk should normalize before handing buffers to the extraction
// core, which assumes UTF-8 throughout.
func NormalizeUTF8(content []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], nil

	case bytes.HasPrefix(content, bomUTF16BE), bytes.HasPrefix(content, bomUTF16LE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content)
		if err != nil {
			return nil, fmt.Errorf("decoding UTF-16: %w", err)
		}
		return out, nil

	default:
		return content, nil
	}
}

package document

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrDecode indicates file bytes that are not text stylefix can process.
var ErrDecode = errors.New("content is not valid text")

// Encoding names the on-disk text encoding of a document.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-bom"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}

// Sniff returns the encoding indicated by a byte order mark, or UTF-8.
func Sniff(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(raw, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(raw, bomUTF16BE):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// Decode converts raw file bytes to UTF-8 text with any BOM removed.
// Content that is not valid UTF-8 after decoding yields ErrDecode.
func Decode(raw []byte) ([]byte, Encoding, error) {
	enc := Sniff(raw)

	text := raw
	if codec := enc.codec(); codec != nil {
		decoded, _, err := transform.Bytes(codec.NewDecoder(), raw)
		if err != nil {
			return nil, enc, fmt.Errorf("%w: %s: %w", ErrDecode, enc, err)
		}
		text = decoded
	}

	if !utf8.Valid(text) {
		return nil, enc, fmt.Errorf("%w: invalid UTF-8 sequence", ErrDecode)
	}
	if bytes.IndexByte(text, 0) >= 0 {
		return nil, enc, fmt.Errorf("%w: NUL byte in content", ErrDecode)
	}

	return text, enc, nil
}

// Encode converts UTF-8 text back to enc, restoring any BOM.
func Encode(text []byte, enc Encoding) ([]byte, error) {
	codec := enc.codec()
	if codec == nil {
		return text, nil
	}
	out, _, err := transform.Bytes(codec.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc, err)
	}
	return out, nil
}

// Load decodes raw bytes and builds a Document for path.
func Load(path string, raw []byte) (*Document, error) {
	text, enc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	doc := New(path, Detect(path), text)
	doc.Encoding = enc
	return doc, nil
}

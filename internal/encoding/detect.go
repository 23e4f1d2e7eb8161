// Package encoding normalises uploaded text files to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// Charset names the encoding a file was decoded from.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
)

var boms = []struct {
	prefix  []byte
	charset Charset
	decoder func() *encoding.Decoder
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8, nil},
	{[]byte{0xFF, 0xFE}, UTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{[]byte{0xFE, 0xFF}, UTF16BE, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// Decode wraps r in a reader producing UTF-8 and reports the charset it
// settled on. A UTF-8 BOM is stripped; UTF-16 needs a BOM to be recognised.
func Decode(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peeking input: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.prefix))
			return br, b.charset, nil
		}

		return transform.NewReader(br, b.decoder()), b.charset, nil
	}

	if utf8.Valid(trimPartialRune(head)) {
		return br, UTF8, nil
	}

	// Old registry exports are Latin-1 family; whatever chardet guesses
	// short of UTF-8 is read as windows-1252.
	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil && res.Charset == string(UTF8) {
		return br, UTF8, nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), Windows1252, nil
}

// trimPartialRune drops a multi-byte sequence cut off by the peek window.
func trimPartialRune(b []byte) []byte {
	if len(b) < sniffSize {
		return b
	}

	i := len(b) - 1
	for i > 0 && len(b)-i < utf8.UTFMax && !utf8.RuneStart(b[i]) {
		i--
	}

	if !utf8.FullRune(b[i:]) {
		return b[:i]
	}

	return b
}

// NewUTF8Reader is Decode without the charset.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	out, _, err := Decode(r)
	return out, err
}

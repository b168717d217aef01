package mecab

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// CharsetEncoding maps a dictionary charset name (as reported by
// DictionaryInfo.Charset) to a text encoding. ok is false for names the
// binding does not know.
func CharsetEncoding(name string) (encoding.Encoding, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UTF-8", "UTF8", "ASCII":
		return unicode.UTF8, true
	case "UTF-16", "UTF16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), true
	case "EUC-JP", "EUCJP", "EUC":
		return japanese.EUCJP, true
	case "SHIFT-JIS", "SHIFT_JIS", "SJIS", "CP932":
		return japanese.ShiftJIS, true
	case "ISO-2022-JP", "JIS":
		return japanese.ISO2022JP, true
	}
	return nil, false
}

// Decode converts raw surface/feature bytes from the dictionary's
// charset to a UTF-8 string. Raw byte accessors stay available
// regardless; Decode only adds the charset-aware text view.
func (d DictionaryInfo) Decode(b []byte) (string, error) {
	enc, ok := CharsetEncoding(d.Charset())
	if !ok {
		return "", opErrorf("Decode", "unknown charset %q", d.Charset())
	}
	if enc == unicode.UTF8 {
		return validUTF8String(b)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &Error{Op: "Decode", Err: err}
	}
	return string(out), nil
}

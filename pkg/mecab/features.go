package mecab

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"iter"
)

// Features is the decoded field sequence of one node's feature string.
// MeCab feature strings are CSV: fields are comma-delimited and may be
// quoted when they embed commas. Decoding copies the fields, so a
// Features value stays valid independently of the node it came from.
type Features struct {
	fields []string
}

// ParseFeatures decodes a raw feature byte string into its fields. An
// empty input yields an empty Features.
func ParseFeatures(b []byte) (Features, error) {
	if len(b) == 0 {
		return Features{}, nil
	}
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Features{}, nil
		}
		return Features{}, &Error{Op: "ParseFeatures", Err: err}
	}
	return Features{fields: rec}, nil
}

// Len is the number of fields.
func (f Features) Len() int { return len(f.fields) }

// IsEmpty reports whether there are no fields.
func (f Features) IsEmpty() bool { return len(f.fields) == 0 }

// Get returns the i-th field, or ok=false out of range.
func (f Features) Get(i int) (Feature, bool) {
	if i < 0 || i >= len(f.fields) {
		return Feature{}, false
	}
	return Feature{raw: f.fields[i]}, true
}

// At returns the i-th field and panics out of range.
func (f Features) At(i int) Feature {
	return Feature{raw: f.fields[i]}
}

// All iterates the fields in order.
func (f Features) All() iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		for _, s := range f.fields {
			if !yield(Feature{raw: s}) {
				return
			}
		}
	}
}

// Feature is one decoded field of a feature string.
type Feature struct {
	raw string
}

// Bytes returns the raw field bytes.
func (f Feature) Bytes() []byte { return []byte(f.raw) }

// Text returns the field as a string, failing if it is not valid UTF-8.
// Use Bytes (optionally with CharsetEncoding) for non-UTF-8
// dictionaries.
func (f Feature) Text() (string, error) {
	return validUTF8String([]byte(f.raw))
}

// String returns the raw field without validation, for formatting.
func (f Feature) String() string { return f.raw }

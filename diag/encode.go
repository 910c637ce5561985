package diag

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode writes the diagnostics to w as a single msgpack value, suitable for
// caching or shipping to a renderer in another process. Callers who need a
// stable order should Sort the source Bag first.
func Encode(w io.Writer, diags []Diagnostic) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(diags)
}

// Decode reads a diagnostic list previously written by Encode.
func Decode(r io.Reader) ([]Diagnostic, error) {
	dec := msgpack.NewDecoder(r)
	var out []Diagnostic
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

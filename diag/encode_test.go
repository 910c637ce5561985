package diag

import (
	"bytes"
	"reflect"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	diags := []Diagnostic{
		NewError(1001, Range{Start: 2, End: 5}, "unknown character").
			WithPath("main.sg").
			WithNote(Range{Start: 0, End: 2}, "started here"),
		New(SevWarning, 2002, Range{Start: 10, End: 10}, "empty body").WithPath("lib.sg"),
	}

	var buf bytes.Buffer
	if err := Encode(&buf, diags); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, diags) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, diags)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Errorf("Decode of invalid msgpack succeeded")
	}
}

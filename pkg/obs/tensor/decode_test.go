package tensor

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

// compressFloats builds a stored payload: little-endian float64 values,
// zlib compressed.
func compressFloats(t *testing.T, values []float64) []byte {
	t.Helper()

	raw := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress close failed: %v", err)
	}
	return buf.Bytes()
}

// compressBytes zlib-compresses an arbitrary raw buffer.
func compressBytes(t *testing.T, raw []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		t.Fatalf("compress failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress close failed: %v", err)
	}
	return buf.Bytes()
}

// TestDecode_RoundTrip tests decoding a well-formed stored payload.
func TestDecode_RoundTrip(t *testing.T) {
	values := []float64{0, 1.5, -2.25, 3, 4.5, 5}
	obs := compressFloats(t, values)

	tr, err := Decode([]byte("[2,3]"), obs)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(tr.Shape(), []int{2, 3}) {
		t.Errorf("Expected shape [2 3], got %v", tr.Shape())
	}
	if got := tr.At(0, 1); got != 1.5 {
		t.Errorf("Expected [0][1] = 1.5, got %v", got)
	}
	if got := tr.At(1, 2); got != 5 {
		t.Errorf("Expected [1][2] = 5, got %v", got)
	}
}

// TestDecode_ElementCountMismatch tests that a payload whose element count
// does not match the shape product fails.
func TestDecode_ElementCountMismatch(t *testing.T) {
	obs := compressFloats(t, []float64{1, 2, 3, 4})

	if _, err := Decode([]byte("[2,3]"), obs); err == nil {
		t.Fatal("Expected error for element count mismatch, got nil")
	}
}

// TestDecode_TruncatedPayload tests that a payload that is not a whole
// number of elements fails.
func TestDecode_TruncatedPayload(t *testing.T) {
	obs := compressBytes(t, make([]byte, 13))

	if _, err := Decode([]byte("[13]"), obs); err == nil {
		t.Fatal("Expected error for truncated payload, got nil")
	}
}

// TestDecode_BadCompression tests that garbage bytes fail decompression.
func TestDecode_BadCompression(t *testing.T) {
	if _, err := Decode([]byte("[2]"), []byte{0xde, 0xad, 0xbe, 0xef}); err == nil {
		t.Fatal("Expected error for bad compression, got nil")
	}
}

// TestDecodeShape tests shape blob decoding.
func TestDecodeShape(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		want    []int
		wantErr bool
	}{
		{"valid", "[2,3,4]", []int{2, 3, 4}, false},
		{"single dimension", "[7]", []int{7}, false},
		{"empty list", "[]", nil, true},
		{"zero dimension", "[2,0]", nil, true},
		{"negative dimension", "[-1,3]", nil, true},
		{"not a list", `{"a":1}`, nil, true},
		{"not json", "\x80\x04", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeShape([]byte(tt.blob))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeShape(%q) error = %v, wantErr %v", tt.blob, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeShape(%q) = %v, want %v", tt.blob, got, tt.want)
			}
		})
	}
}

// TestDecompress_Lossless tests that decompression is lossless.
func TestDecompress_Lossless(t *testing.T) {
	raw := []byte("observation payload bytes \x00\x01\x02")
	got, err := Decompress(compressBytes(t, raw))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Expected %q, got %q", raw, got)
	}
}

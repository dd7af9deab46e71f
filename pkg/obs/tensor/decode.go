package tensor

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// float64Size is the element width of the stored payload in bytes.
const float64Size = 8

// DecodeShape decodes a JSON-encoded dimension list, e.g. "[2,3,4]".
func DecodeShape(blob []byte) ([]int, error) {
	var shape []int
	if err := json.Unmarshal(blob, &shape); err != nil {
		return nil, fmt.Errorf("failed to decode shape: %w", err)
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("shape must have at least one dimension")
	}
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("shape dimension %d must be positive, got %d", i, dim)
		}
	}
	return shape, nil
}

// Decompress inflates a zlib-compressed payload losslessly.
func Decompress(blob []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return raw, nil
}

// Decode reconstructs a tensor from its stored form: a JSON shape blob and
// a zlib-compressed buffer of little-endian float64 values in row-major
// order. It fails if decompression fails, the shape cannot be decoded, the
// raw buffer is not a whole number of elements, or the element count does
// not match the product of the shape dimensions.
func Decode(shapeBlob, obsBlob []byte) (*Tensor, error) {
	shape, err := DecodeShape(shapeBlob)
	if err != nil {
		return nil, err
	}

	raw, err := Decompress(obsBlob)
	if err != nil {
		return nil, err
	}
	if len(raw)%float64Size != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of element size %d",
			len(raw), float64Size)
	}

	data := make([]float64, len(raw)/float64Size)
	for i := range data {
		bits := binary.LittleEndian.Uint64(raw[i*float64Size:])
		data[i] = math.Float64frombits(bits)
	}

	return New(shape, data)
}

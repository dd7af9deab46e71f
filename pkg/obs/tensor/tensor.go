package tensor

import "fmt"

// Tensor is a dense N-dimensional float64 array in row-major order (the
// last dimension varies fastest).
type Tensor struct {
	shape []int
	data  []float64
}

// New creates a tensor over data with the given shape. The element count of
// data must equal the product of the shape dimensions and every dimension
// must be positive. The tensor takes ownership of both slices.
func New(shape []int, data []float64) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("shape must have at least one dimension")
	}
	count := 1
	for i, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("shape dimension %d must be positive, got %d", i, dim)
		}
		count *= dim
	}
	if count != len(data) {
		return nil, fmt.Errorf("element count mismatch: shape %v requires %d elements, got %d",
			shape, count, len(data))
	}
	return &Tensor{shape: shape, data: data}, nil
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the dimension sizes.
func (t *Tensor) Shape() []int {
	shape := make([]int, len(t.shape))
	copy(shape, t.shape)
	return shape
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Sub returns the sub-tensor obtained by fixing the leading axis at index i.
// The result is a view sharing the underlying data. Sub panics if the
// tensor has rank 1 or i is out of bounds; callers iterate the leading axis
// in range, so either is a programming error.
func (t *Tensor) Sub(i int) *Tensor {
	if len(t.shape) < 2 {
		panic("tensor: Sub on rank-1 tensor")
	}
	if i < 0 || i >= t.shape[0] {
		panic(fmt.Sprintf("tensor: Sub index %d out of bounds [0, %d)", i, t.shape[0]))
	}
	stride := len(t.data) / t.shape[0]
	return &Tensor{
		shape: t.shape[1:],
		data:  t.data[i*stride : (i+1)*stride],
	}
}

// At returns the element at row r, column c of a rank-1 or rank-2 tensor.
// For rank 1 the tensor is treated as a single column.
func (t *Tensor) At(r, c int) float64 {
	switch len(t.shape) {
	case 1:
		if c != 0 {
			panic(fmt.Sprintf("tensor: column %d out of bounds on rank-1 tensor", c))
		}
		return t.data[r]
	case 2:
		return t.data[r*t.shape[1]+c]
	default:
		panic(fmt.Sprintf("tensor: At on rank-%d tensor", len(t.shape)))
	}
}

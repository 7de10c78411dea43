package tensor

// BHWC is a tensor shape in batch, height, width, channels order.
type BHWC struct {
	B int32
	H int32
	W int32
	C int32
}

// NumElements returns the product of the shape's dimensions.
func (s BHWC) NumElements() int64 {
	return int64(s.B) * int64(s.H) * int64(s.W) * int64(s.C)
}

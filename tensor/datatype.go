// Package tensor provides the element types and shapes of the tensors
// that GPU objects store.
package tensor

// DataType is the element type of data stored in a GPU object.
type DataType uint8

const (
	Unknown DataType = iota
	Float16
	Float32
	Float64
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Bool
)

// Size returns the width of a single element in bytes, or 0 for Unknown.
func (d DataType) Size() int {
	switch d {
	case Int8, UInt8, Bool:
		return 1
	case Float16, Int16, UInt16:
		return 2
	case Float32, Int32, UInt32:
		return 4
	case Float64, Int64, UInt64:
		return 8
	default:
		return 0
	}
}

func (d DataType) String() string {
	switch d {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case UInt16:
		return "uint16"
	case UInt32:
		return "uint32"
	case UInt64:
		return "uint64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package glcompute describes the GPU memory resources (buffers and
// textures) that a shader compilation pipeline binds to compute programs.
//
// An Object either references a resource materialized elsewhere in the
// pipeline or carries pre-defined constant data inline. Producers build
// objects with the Make functions; the shader compiler consumes them
// read-only, assigning only the binding slot.
package glcompute

import (
	"honnef.co/go/glcompute/glmath"
	"honnef.co/go/glcompute/tensor"
	"honnef.co/go/safeish"
)

// AccessType is how a compiled program may touch a resource.
type AccessType int

const (
	AccessRead AccessType = iota + 1
	AccessWrite
	AccessReadWrite
)

func (a AccessType) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "read_write"
	default:
		return "invalid"
	}
}

// ObjectType is the requested physical resource category.
// ObjectTypeUnknown means the compiler chooses.
type ObjectType int

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeTexture
	ObjectTypeBuffer
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeTexture:
		return "texture"
	case ObjectTypeBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// ObjectRef identifies a resource materialized by another part of the
// pipeline. It carries no ownership of the referenced resource.
type ObjectRef uint32

// InvalidObjectRef is returned by Ref for objects that hold inline data.
// Producers never emit it as a real id.
const InvalidObjectRef = ^ObjectRef(0)

// ObjectData is inline constant resource content, padded to a multiple of
// 16 bytes.
type ObjectData []byte

// Payload is the resolution state of an object: either inline constant
// bytes (ObjectData) or a reference resolved later by the compiler
// (ObjectRef).
type Payload interface {
	isPayload()
}

func (ObjectData) isPayload() {}
func (ObjectRef) isPayload()  {}

// Binding is a backend binding slot. The zero value means "not yet
// assigned"; only the shader compiler assigns slots, so "unassigned" stays
// distinguishable from slot 0.
type Binding struct {
	Slot     uint32
	Assigned bool
}

// Object describes a reference to or a pre-defined constant buffer or
// texture. Producers set all fields but leave Binding unassigned; the
// compiler fills it in during program compilation.
type Object struct {
	Access   AccessType
	DataType tensor.DataType
	Type     ObjectType
	Binding  Binding
	Size     Size
	Payload  Payload
}

// IsRef reports whether the object is a reference rather than inline data.
func (o *Object) IsRef() bool {
	_, data := o.Payload.(ObjectData)
	return !data
}

// Ref returns the object's reference id, or InvalidObjectRef if the
// object holds inline data.
func (o *Object) Ref() ObjectRef {
	if ref, ok := o.Payload.(ObjectRef); ok {
		return ref
	}
	return InvalidObjectRef
}

// Data returns the object's inline data, or nil if the object is a
// reference.
func (o *Object) Data() ObjectData {
	data, _ := o.Payload.(ObjectData)
	return data
}

// ByteSize returns the number of bytes needed to store the object's
// elements, where a single element consists of 4 values. The compiler and
// the object allocator both size memory with this formula.
func (o *Object) ByteSize() uint64 {
	return uint64(o.DataType.Size()) * 4 * o.Size.NumElements()
}

// MakeRef returns an object that references a resource created
// externally. The referenced resource's concrete type is decided by the
// compiler.
func MakeRef(ref ObjectRef, size Size, access AccessType) Object {
	return Object{
		Access:   access,
		DataType: tensor.Float32,
		Type:     ObjectTypeUnknown,
		Size:     size,
		Payload:  ref,
	}
}

// payloadAlignment is the vec4 packing unit. Consumers assume payload
// lengths are multiples of it.
const payloadAlignment = 16

func makeReadonly(typ ObjectType, size Size, data []float32) Object {
	if size == nil {
		size = Size1D(glmath.DivideRoundUp(uint32(len(data)), 4))
	}
	return Object{
		Access:   AccessRead,
		DataType: tensor.Float32,
		Type:     typ,
		Size:     size,
		Payload:  toBytes(data, payloadAlignment),
	}
}

// MakeReadonlyObject returns a read-only object of unknown type holding
// data packed four values per element. A nil size derives a 1D size from
// len(data), rounding the last element up.
func MakeReadonlyObject(size Size, data []float32) Object {
	return makeReadonly(ObjectTypeUnknown, size, data)
}

// MakeReadonlyTexture is MakeReadonlyObject with the texture type
// requested.
func MakeReadonlyTexture(size Size, data []float32) Object {
	return makeReadonly(ObjectTypeTexture, size, data)
}

// MakeReadonlyBuffer is MakeReadonlyObject with the buffer type
// requested.
func MakeReadonlyBuffer(size Size, data []float32) Object {
	return makeReadonly(ObjectTypeBuffer, size, data)
}

func toBytes(data []float32, alignment int) ObjectData {
	buf := make(ObjectData, glmath.AlignByN(len(data)*4, alignment))
	copy(buf, safeish.SliceCast[[]byte](data))
	return buf
}

// PHWC4Size returns the size of a tensor stored in the PHWC4 layout,
// which packs channels in groups of four into single elements and stacks
// batches along the depth axis.
func PHWC4Size(shape tensor.BHWC) Size3D {
	return Size3D{
		X: uint32(shape.W),
		Y: uint32(shape.H),
		Z: uint32(shape.B) * glmath.DivideRoundUp(uint32(shape.C), 4),
	}
}

// MakePHWC4Ref returns a read-write reference to a tensor stored in the
// PHWC4 layout.
func MakePHWC4Ref(ref ObjectRef, shape tensor.BHWC) Object {
	return MakeRef(ref, PHWC4Size(shape), AccessReadWrite)
}

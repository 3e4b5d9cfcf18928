package fields

import (
	"fmt"

	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/variant"
)

// Field is one decoded sub-packet. The dynamic type of Value is fixed by ID.
type Field struct {
	ID    ID
	Value variant.Value
}

// Decoder decodes sub-packet payloads by field id.
type Decoder struct {
	Variant variant.Decoder
}

// Decode decodes payload as the value type assigned to id.
func Decode(id ID, payload []byte) (Field, error) {
	return Decoder{}.Decode(id, payload)
}

// Decode requires the decoder for id to consume payload exactly.
func (d Decoder) Decode(id ID, payload []byte) (Field, error) {
	spec, ok := Lookup(id)
	if !ok {
		return Field{}, fmt.Errorf("%w: 0x%04x", protocol.ErrUnknownField, uint16(id))
	}
	if spec.Reserved {
		return Field{}, fmt.Errorf("%w: field %s", protocol.ErrNotImplemented, spec.Name)
	}
	v, rest, err := d.Variant.Decode(payload, spec.Type)
	if err != nil {
		return Field{}, fmt.Errorf("%s: %w", spec.Name, err)
	}
	if len(rest) != 0 {
		return Field{}, fmt.Errorf("%w: %s left %d of %d bytes", protocol.ErrInvalidLength, spec.Name, len(rest), len(payload))
	}
	return Field{ID: id, Value: v}, nil
}

func (f Field) String() string {
	return fmt.Sprintf("%s = %v", f.ID, f.Value)
}

func mismatch(f Field, want variant.Type) error {
	got := "none"
	if f.Value != nil {
		got = f.Value.Type().String()
	}
	return fmt.Errorf("%w: %s is %s, not %s", protocol.ErrFieldTypeMismatch, f.ID, got, want)
}

// Uint8 returns the field value as uint8.
func (f Field) Uint8() (uint8, error) {
	v, ok := f.Value.(variant.U8)
	if !ok {
		return 0, mismatch(f, variant.TypeU8)
	}
	return uint8(v), nil
}

// Uint16 returns the field value as uint16.
func (f Field) Uint16() (uint16, error) {
	v, ok := f.Value.(variant.U16)
	if !ok {
		return 0, mismatch(f, variant.TypeU16)
	}
	return uint16(v), nil
}

// Uint32 returns the field value as uint32.
func (f Field) Uint32() (uint32, error) {
	v, ok := f.Value.(variant.U32)
	if !ok {
		return 0, mismatch(f, variant.TypeU32)
	}
	return uint32(v), nil
}

// Uint64 returns the field value as uint64.
func (f Field) Uint64() (uint64, error) {
	v, ok := f.Value.(variant.U64)
	if !ok {
		return 0, mismatch(f, variant.TypeU64)
	}
	return uint64(v), nil
}

// Float64 returns the field value as float64.
func (f Field) Float64() (float64, error) {
	v, ok := f.Value.(variant.F64)
	if !ok {
		return 0, mismatch(f, variant.TypeF64)
	}
	return float64(v), nil
}

// Text returns the field value as string.
func (f Field) Text() (string, error) {
	v, ok := f.Value.(variant.String)
	if !ok {
		return "", mismatch(f, variant.TypeString)
	}
	return string(v), nil
}

// Point2D returns the field value as a 2D point.
func (f Field) Point2D() (variant.Point2D, error) {
	v, ok := f.Value.(variant.Point2D)
	if !ok {
		return variant.Point2D{}, mismatch(f, variant.TypePoint2D)
	}
	return v, nil
}

// Point3D returns the field value as a 3D point.
func (f Field) Point3D() (variant.Point3D, error) {
	v, ok := f.Value.(variant.Point3D)
	if !ok {
		return variant.Point3D{}, mismatch(f, variant.TypePoint3D)
	}
	return v, nil
}

// Vector3D returns the field value as a 3D direction.
func (f Field) Vector3D() (variant.Vector3D, error) {
	v, ok := f.Value.(variant.Vector3D)
	if !ok {
		return variant.Vector3D{}, mismatch(f, variant.TypeVector3D)
	}
	return v, nil
}

// Quaternion returns the field value as a rotation quaternion.
func (f Field) Quaternion() (variant.Quaternion, error) {
	v, ok := f.Value.(variant.Quaternion)
	if !ok {
		return variant.Quaternion{}, mismatch(f, variant.TypeQuaternion)
	}
	return v, nil
}

// Vector returns the field value as a vector of values.
func (f Field) Vector() (variant.Vector, error) {
	v, ok := f.Value.(variant.Vector)
	if !ok {
		return nil, mismatch(f, variant.TypeVector)
	}
	return v, nil
}

// WorldIntersection returns the optional intersection; ok is false when absent.
func (f Field) WorldIntersection() (wi variant.WorldIntersection, ok bool, err error) {
	v, isWI := f.Value.(variant.OptionalWorldIntersection)
	if !isWI {
		return variant.WorldIntersection{}, false, mismatch(f, variant.TypeWorldIntersection)
	}
	return v.Intersection, v.Valid, nil
}

// WorldIntersections returns the field value as a list of intersections.
func (f Field) WorldIntersections() (variant.WorldIntersections, error) {
	v, ok := f.Value.(variant.WorldIntersections)
	if !ok {
		return nil, mismatch(f, variant.TypeWorldIntersections)
	}
	return v, nil
}

// UserMarker returns the optional marker; ok is false when absent.
func (f Field) UserMarker() (m variant.UserMarker, ok bool, err error) {
	v, isMarker := f.Value.(variant.OptionalUserMarker)
	if !isMarker {
		return variant.UserMarker{}, false, mismatch(f, variant.TypeUserMarker)
	}
	return v.Marker, v.Valid, nil
}

package variant

import "fmt"

// Type is the wire tag of a variant value.
type Type uint16

// Wire tags. PacketHeader, SubPacketHeader and the matrix tags are reserved and
// never decoded.
const (
	TypeU8                 Type = 0x00
	TypeU16                Type = 0x01
	TypeU32                Type = 0x02
	TypeS32                Type = 0x03
	TypeU64                Type = 0x04
	TypeF64                Type = 0x05
	TypePoint2D            Type = 0x06
	TypeVector2D           Type = 0x07
	TypePoint3D            Type = 0x08
	TypeVector3D           Type = 0x09
	TypeString             Type = 0x0A
	TypeVector             Type = 0x0B
	TypeStruct             Type = 0x0C
	TypeWorldIntersection  Type = 0x0D
	TypeWorldIntersections Type = 0x0E
	TypePacketHeader       Type = 0x0F
	TypeSubPacketHeader    Type = 0x10
	TypeF32                Type = 0x11
	TypeMatrix3x3          Type = 0x12
	TypeMatrix2x2          Type = 0x13
	TypeQuaternion         Type = 0x14
	TypeUserMarker         Type = 0x15

	typeCount = TypeUserMarker + 1
)

var typeNames = [typeCount]string{
	TypeU8:                 "u8",
	TypeU16:                "u16",
	TypeU32:                "u32",
	TypeS32:                "s32",
	TypeU64:                "u64",
	TypeF64:                "f64",
	TypePoint2D:            "point2d",
	TypeVector2D:           "vect2d",
	TypePoint3D:            "point3d",
	TypeVector3D:           "vect3d",
	TypeString:             "string",
	TypeVector:             "vector",
	TypeStruct:             "struct",
	TypeWorldIntersection:  "world_intersection",
	TypeWorldIntersections: "world_intersections",
	TypePacketHeader:       "packet_header",
	TypeSubPacketHeader:    "sub_packet_header",
	TypeF32:                "f32",
	TypeMatrix3x3:          "matrix3x3",
	TypeMatrix2x2:          "matrix2x2",
	TypeQuaternion:         "quaternion",
	TypeUserMarker:         "user_marker",
}

func (t Type) String() string {
	if t < typeCount {
		return typeNames[t]
	}
	return fmt.Sprintf("type(0x%04x)", uint16(t))
}

// Reserved reports whether t is a known tag that this decoder refuses.
func (t Type) Reserved() bool {
	switch t {
	case TypePacketHeader, TypeSubPacketHeader, TypeMatrix3x3, TypeMatrix2x2:
		return true
	}
	return false
}

package variant

// Value is one decoded variant. The set of implementations is closed: every
// concrete type in this package reports its wire tag through Type.
type Value interface {
	Type() Type
	isValue()
}

type (
	U8  uint8
	U16 uint16
	U32 uint32
	S32 int32
	U64 uint64
	F32 float32
	F64 float64

	String string
)

// Point2D is x, y.
type Point2D struct {
	X, Y float64
}

// Vector2D is x, y.
type Vector2D struct {
	X, Y float64
}

// Point3D is x, y, z.
type Point3D struct {
	X, Y, Z float64
}

// Vector3D is x, y, z.
type Vector3D struct {
	X, Y, Z float64
}

// Quaternion is w, x, y, z.
type Quaternion struct {
	W, X, Y, Z float64
}

// Vector is an ordered list of tagged values. Items may differ in type.
type Vector []Value

// StructItem is one named member of a Struct.
type StructItem struct {
	Key   string
	Value Value
}

// Struct keeps members in wire order. Keys are not required to be unique.
type Struct []StructItem

// Get returns the first member named key.
func (s Struct) Get(key string) (Value, bool) {
	for _, item := range s {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// WorldIntersection is a gaze/world model hit.
type WorldIntersection struct {
	WorldPoint  Point3D
	ObjectPoint Point3D
	ObjectName  string
}

// OptionalWorldIntersection is absent when Valid is false.
type OptionalWorldIntersection struct {
	Intersection WorldIntersection
	Valid        bool
}

// WorldIntersections carries every hit; items have no presence flag.
type WorldIntersections []WorldIntersection

// UserMarker is a marker event raised by the operator.
type UserMarker struct {
	Error       int32
	TimeStamp   uint64
	CameraClock uint64
	CameraIdx   uint8
	Data        uint64
}

// OptionalUserMarker is absent when Valid is false.
type OptionalUserMarker struct {
	Marker UserMarker
	Valid  bool
}

func (U8) Type() Type                        { return TypeU8 }
func (U16) Type() Type                       { return TypeU16 }
func (U32) Type() Type                       { return TypeU32 }
func (S32) Type() Type                       { return TypeS32 }
func (U64) Type() Type                       { return TypeU64 }
func (F32) Type() Type                       { return TypeF32 }
func (F64) Type() Type                       { return TypeF64 }
func (String) Type() Type                    { return TypeString }
func (Point2D) Type() Type                   { return TypePoint2D }
func (Vector2D) Type() Type                  { return TypeVector2D }
func (Point3D) Type() Type                   { return TypePoint3D }
func (Vector3D) Type() Type                  { return TypeVector3D }
func (Quaternion) Type() Type                { return TypeQuaternion }
func (Vector) Type() Type                    { return TypeVector }
func (Struct) Type() Type                    { return TypeStruct }
func (OptionalWorldIntersection) Type() Type { return TypeWorldIntersection }
func (WorldIntersections) Type() Type        { return TypeWorldIntersections }
func (OptionalUserMarker) Type() Type        { return TypeUserMarker }

func (U8) isValue()                        {}
func (U16) isValue()                       {}
func (U32) isValue()                       {}
func (S32) isValue()                       {}
func (U64) isValue()                       {}
func (F32) isValue()                       {}
func (F64) isValue()                       {}
func (String) isValue()                    {}
func (Point2D) isValue()                   {}
func (Vector2D) isValue()                  {}
func (Point3D) isValue()                   {}
func (Vector3D) isValue()                  {}
func (Quaternion) isValue()                {}
func (Vector) isValue()                    {}
func (Struct) isValue()                    {}
func (OptionalWorldIntersection) isValue() {}
func (WorldIntersections) isValue()        {}
func (OptionalUserMarker) isValue()        {}

package variant

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/danmuck/sepdata/internal/protocol"
)

// DefaultMaxDepth bounds Vector/Struct nesting when a Decoder leaves MaxDepth unset.
const DefaultMaxDepth = 64

// Minimum encoded sizes, used to reject element counts the input cannot hold
// before allocating for them.
const (
	minVectorItem       = 2 + 1
	minStructItem       = 2 + 2 + 1
	worldIntersectionSz = 24 + 24 + 2
	userMarkerSz        = 4 + 8 + 8 + 1 + 8
)

// Decoder decodes variant values. The zero value is ready to use.
type Decoder struct {
	// MaxDepth is the deepest Vector/Struct nesting accepted.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

type state struct {
	depth int
	max   int
}

type decodeFunc func(s *state, b []byte) (Value, []byte, error)

// decoders is indexed by wire tag. It is filled in init because the composite
// decoders recurse through it.
var decoders [typeCount]decodeFunc

func init() {
	decoders = [typeCount]decodeFunc{
		TypeU8:                 decodeU8,
		TypeU16:                decodeU16,
		TypeU32:                decodeU32,
		TypeS32:                decodeS32,
		TypeU64:                decodeU64,
		TypeF64:                decodeF64,
		TypePoint2D:            decodePoint2D,
		TypeVector2D:           decodeVector2D,
		TypePoint3D:            decodePoint3D,
		TypeVector3D:           decodeVector3D,
		TypeString:             decodeString,
		TypeVector:             decodeVector,
		TypeStruct:             decodeStruct,
		TypeWorldIntersection:  decodeOptionalWorldIntersection,
		TypeWorldIntersections: decodeWorldIntersections,
		TypePacketHeader:       decodeReserved(TypePacketHeader),
		TypeSubPacketHeader:    decodeReserved(TypeSubPacketHeader),
		TypeF32:                decodeF32,
		TypeMatrix3x3:          decodeReserved(TypeMatrix3x3),
		TypeMatrix2x2:          decodeReserved(TypeMatrix2x2),
		TypeQuaternion:         decodeQuaternion,
		TypeUserMarker:         decodeOptionalUserMarker,
	}
}

// Decode decodes exactly one value of type t from the front of b and returns
// the bytes that follow it. On error the returned slice is nil.
func Decode(b []byte, t Type) (Value, []byte, error) {
	return Decoder{}.Decode(b, t)
}

// DecodeTagged reads a u16 type tag and then the value it announces.
func DecodeTagged(b []byte) (Value, []byte, error) {
	return Decoder{}.DecodeTagged(b)
}

func (d Decoder) Decode(b []byte, t Type) (Value, []byte, error) {
	return d.newState().decode(b, t)
}

func (d Decoder) DecodeTagged(b []byte) (Value, []byte, error) {
	return d.newState().decodeTagged(b)
}

func (d Decoder) newState() *state {
	limit := d.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	return &state{max: limit}
}

func (s *state) decode(b []byte, t Type) (Value, []byte, error) {
	if t >= typeCount {
		return nil, nil, fmt.Errorf("%w: 0x%04x", protocol.ErrUnknownType, uint16(t))
	}
	return decoders[t](s, b)
}

func (s *state) decodeTagged(b []byte) (Value, []byte, error) {
	tag, rest, err := takeU16(b, "type tag")
	if err != nil {
		return nil, nil, err
	}
	return s.decode(rest, Type(tag))
}

func (s *state) enter() error {
	if s.depth >= s.max {
		return fmt.Errorf("%w: limit %d", protocol.ErrDepthExceeded, s.max)
	}
	s.depth++
	return nil
}

func (s *state) leave() { s.depth-- }

func need(b []byte, n int, what string) error {
	if len(b) < n {
		return fmt.Errorf("%w: %s needs %d bytes, have %d", protocol.ErrTruncated, what, n, len(b))
	}
	return nil
}

func takeU16(b []byte, what string) (uint16, []byte, error) {
	if err := need(b, 2, what); err != nil {
		return 0, nil, err
	}
	return binary.BigEndian.Uint16(b), b[2:], nil
}

func f64At(b []byte, off int) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b[off:]))
}

func decodeReserved(t Type) decodeFunc {
	return func(*state, []byte) (Value, []byte, error) {
		return nil, nil, fmt.Errorf("%w: type %s", protocol.ErrNotImplemented, t)
	}
}

func decodeU8(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 1, "u8"); err != nil {
		return nil, nil, err
	}
	return U8(b[0]), b[1:], nil
}

func decodeU16(_ *state, b []byte) (Value, []byte, error) {
	v, rest, err := takeU16(b, "u16")
	if err != nil {
		return nil, nil, err
	}
	return U16(v), rest, nil
}

func decodeU32(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 4, "u32"); err != nil {
		return nil, nil, err
	}
	return U32(binary.BigEndian.Uint32(b)), b[4:], nil
}

func decodeS32(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 4, "s32"); err != nil {
		return nil, nil, err
	}
	return S32(int32(binary.BigEndian.Uint32(b))), b[4:], nil
}

func decodeU64(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 8, "u64"); err != nil {
		return nil, nil, err
	}
	return U64(binary.BigEndian.Uint64(b)), b[8:], nil
}

func decodeF32(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 4, "f32"); err != nil {
		return nil, nil, err
	}
	return F32(math.Float32frombits(binary.BigEndian.Uint32(b))), b[4:], nil
}

func decodeF64(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 8, "f64"); err != nil {
		return nil, nil, err
	}
	return F64(f64At(b, 0)), b[8:], nil
}

func decodePoint2D(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 16, "point2d"); err != nil {
		return nil, nil, err
	}
	return Point2D{X: f64At(b, 0), Y: f64At(b, 8)}, b[16:], nil
}

func decodeVector2D(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 16, "vect2d"); err != nil {
		return nil, nil, err
	}
	return Vector2D{X: f64At(b, 0), Y: f64At(b, 8)}, b[16:], nil
}

func point3D(b []byte, what string) (Point3D, []byte, error) {
	if err := need(b, 24, what); err != nil {
		return Point3D{}, nil, err
	}
	return Point3D{X: f64At(b, 0), Y: f64At(b, 8), Z: f64At(b, 16)}, b[24:], nil
}

func decodePoint3D(_ *state, b []byte) (Value, []byte, error) {
	p, rest, err := point3D(b, "point3d")
	if err != nil {
		return nil, nil, err
	}
	return p, rest, nil
}

func decodeVector3D(_ *state, b []byte) (Value, []byte, error) {
	p, rest, err := point3D(b, "vect3d")
	if err != nil {
		return nil, nil, err
	}
	return Vector3D(p), rest, nil
}

func decodeQuaternion(_ *state, b []byte) (Value, []byte, error) {
	if err := need(b, 32, "quaternion"); err != nil {
		return nil, nil, err
	}
	q := Quaternion{W: f64At(b, 0), X: f64At(b, 8), Y: f64At(b, 16), Z: f64At(b, 24)}
	return q, b[32:], nil
}

func str(b []byte) (string, []byte, error) {
	n, rest, err := takeU16(b, "string length")
	if err != nil {
		return "", nil, err
	}
	if err := need(rest, int(n), "string"); err != nil {
		return "", nil, err
	}
	raw := rest[:n]
	if !utf8.Valid(raw) {
		return "", nil, protocol.ErrInvalidEncoding
	}
	return string(raw), rest[n:], nil
}

func decodeString(_ *state, b []byte) (Value, []byte, error) {
	v, rest, err := str(b)
	if err != nil {
		return nil, nil, err
	}
	return String(v), rest, nil
}

// count reads a u16 element count and checks that rest can hold that many
// elements of at least minSize bytes each.
func count(b []byte, minSize int, what string) (int, []byte, error) {
	n, rest, err := takeU16(b, what+" count")
	if err != nil {
		return 0, nil, err
	}
	if err := need(rest, int(n)*minSize, what); err != nil {
		return 0, nil, err
	}
	return int(n), rest, nil
}

func decodeVector(s *state, b []byte) (Value, []byte, error) {
	n, rest, err := count(b, minVectorItem, "vector")
	if err != nil {
		return nil, nil, err
	}
	if err := s.enter(); err != nil {
		return nil, nil, err
	}
	defer s.leave()

	items := make(Vector, 0, n)
	for i := 0; i < n; i++ {
		var v Value
		v, rest, err = s.decodeTagged(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("vector[%d]: %w", i, err)
		}
		items = append(items, v)
	}
	return items, rest, nil
}

func decodeStruct(s *state, b []byte) (Value, []byte, error) {
	n, rest, err := count(b, minStructItem, "struct")
	if err != nil {
		return nil, nil, err
	}
	if err := s.enter(); err != nil {
		return nil, nil, err
	}
	defer s.leave()

	items := make(Struct, 0, n)
	for i := 0; i < n; i++ {
		var key string
		key, rest, err = str(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("struct[%d] key: %w", i, err)
		}
		var v Value
		v, rest, err = s.decodeTagged(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("struct[%d] %q: %w", i, key, err)
		}
		items = append(items, StructItem{Key: key, Value: v})
	}
	return items, rest, nil
}

func worldIntersection(b []byte) (WorldIntersection, []byte, error) {
	world, rest, err := point3D(b, "world point")
	if err != nil {
		return WorldIntersection{}, nil, err
	}
	object, rest, err := point3D(rest, "object point")
	if err != nil {
		return WorldIntersection{}, nil, err
	}
	name, rest, err := str(rest)
	if err != nil {
		return WorldIntersection{}, nil, err
	}
	return WorldIntersection{WorldPoint: world, ObjectPoint: object, ObjectName: name}, rest, nil
}

// presence reads the u16 flag in front of optional values.
func presence(b []byte) (bool, []byte, error) {
	flag, rest, err := takeU16(b, "presence flag")
	if err != nil {
		return false, nil, err
	}
	switch flag {
	case 0:
		return false, rest, nil
	case 1:
		return true, rest, nil
	default:
		return false, nil, fmt.Errorf("%w: %d", protocol.ErrInvalidPresence, flag)
	}
}

func decodeOptionalWorldIntersection(_ *state, b []byte) (Value, []byte, error) {
	ok, rest, err := presence(b)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return OptionalWorldIntersection{}, rest, nil
	}
	wi, rest, err := worldIntersection(rest)
	if err != nil {
		return nil, nil, err
	}
	return OptionalWorldIntersection{Intersection: wi, Valid: true}, rest, nil
}

func decodeWorldIntersections(_ *state, b []byte) (Value, []byte, error) {
	n, rest, err := count(b, worldIntersectionSz, "world intersections")
	if err != nil {
		return nil, nil, err
	}
	items := make(WorldIntersections, 0, n)
	for i := 0; i < n; i++ {
		var wi WorldIntersection
		wi, rest, err = worldIntersection(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("world intersections[%d]: %w", i, err)
		}
		items = append(items, wi)
	}
	return items, rest, nil
}

func decodeOptionalUserMarker(_ *state, b []byte) (Value, []byte, error) {
	ok, rest, err := presence(b)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return OptionalUserMarker{}, rest, nil
	}
	if err := need(rest, userMarkerSz, "user marker"); err != nil {
		return nil, nil, err
	}
	m := UserMarker{
		Error:       int32(binary.BigEndian.Uint32(rest[0:4])),
		TimeStamp:   binary.BigEndian.Uint64(rest[4:12]),
		CameraClock: binary.BigEndian.Uint64(rest[12:20]),
		CameraIdx:   rest[20],
		Data:        binary.BigEndian.Uint64(rest[21:29]),
	}
	return OptionalUserMarker{Marker: m, Valid: true}, rest[userMarkerSz:], nil
}

package fields

import (
	"errors"
	"testing"

	"github.com/danmuck/sepdata/internal/protocol"
	"github.com/danmuck/sepdata/internal/protocol/variant"
	"github.com/danmuck/sepdata/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeFrameNumber(t *testing.T) {
	testlog.Start(t)
	f, err := Decode(FrameNumber, []byte{0x00, 0x00, 0x45, 0x9B})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, err := f.Uint32()
	if err != nil || n != 17819 {
		t.Fatalf("unexpected frame number: %d err=%v", n, err)
	}
	if _, err := f.Float64(); !errors.Is(err, protocol.ErrFieldTypeMismatch) {
		t.Fatalf("expected ErrFieldTypeMismatch, got %v", err)
	}
}

func TestDecodeTimeStamp(t *testing.T) {
	testlog.Start(t)
	f, err := Decode(TimeStamp, []byte{0x00, 0x00, 0x04, 0x12, 0xDE, 0x00, 0x01, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ts, err := f.Uint64()
	if err != nil || ts != 4479080464640 {
		t.Fatalf("unexpected timestamp: %d err=%v", ts, err)
	}
}

func TestDecodeRequiresExactConsumption(t *testing.T) {
	testlog.Start(t)
	_, err := Decode(FrameNumber, []byte{0x00, 0x00, 0x45, 0x9B, 0x00})
	if !errors.Is(err, protocol.ErrInvalidLength) {
		t.Fatalf("over-long payload: expected ErrInvalidLength, got %v", err)
	}
	_, err = Decode(FrameNumber, []byte{0x00, 0x00, 0x45})
	if !errors.Is(err, protocol.ErrTruncated) {
		t.Fatalf("short payload: expected ErrTruncated, got %v", err)
	}
}

func TestDecodeUnknownAndReserved(t *testing.T) {
	testlog.Start(t)
	if _, err := Decode(ID(0x7777), []byte{0x00}); !errors.Is(err, protocol.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	for _, id := range []ID{TrackingState, EyeglassesStatus, ReflexReductionState} {
		spec, ok := Lookup(id)
		if !ok || !spec.Reserved {
			t.Fatalf("%s should be a reserved entry", id)
		}
		if _, err := Decode(id, []byte{0x00, 0x00}); !errors.Is(err, protocol.ErrNotImplemented) {
			t.Fatalf("%s: expected ErrNotImplemented, got %v", id, err)
		}
	}
}

func TestDecodeGeometryAndOptionals(t *testing.T) {
	testlog.Start(t)
	p3 := []byte{
		0x40, 0x5E, 0xDD, 0x2F, 0x1A, 0x9F, 0xBE, 0x77,
		0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xBF, 0xB9, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9A,
	}
	f, err := Decode(HeadPosition, p3)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := f.Point3D()
	if err != nil {
		t.Fatalf("accessor: %v", err)
	}
	if diff := cmp.Diff(variant.Point3D{X: 123.456, Y: 1.0, Z: -0.1}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	f, err = Decode(ClosestWorldIntersection, []byte{0x00, 0x00})
	if err != nil {
		t.Fatalf("decode absent intersection: %v", err)
	}
	if _, ok, err := f.WorldIntersection(); err != nil || ok {
		t.Fatalf("expected absent intersection, ok=%v err=%v", ok, err)
	}

	_, err = Decode(UserMarker, []byte{0x00, 0x03})
	if !errors.Is(err, protocol.ErrInvalidPresence) {
		t.Fatalf("expected ErrInvalidPresence, got %v", err)
	}
}

func TestTableIsConsistent(t *testing.T) {
	seen := make(map[string]ID)
	for _, s := range Specs() {
		if prev, dup := seen[s.Name]; dup {
			t.Fatalf("name %s used by 0x%04x and 0x%04x", s.Name, uint16(prev), uint16(s.ID))
		}
		seen[s.Name] = s.ID
		if s.ID.String() != s.Name {
			t.Fatalf("0x%04x: String()=%s want %s", uint16(s.ID), s.ID, s.Name)
		}
		if s.Reserved {
			continue
		}
		if s.Type.Reserved() || s.Type.String() == "" {
			t.Fatalf("%s maps to unusable type %s", s.Name, s.Type)
		}
	}
	if len(seen) != len(byID) {
		t.Fatalf("table has duplicate ids: %d names, %d ids", len(seen), len(byID))
	}
	if ID(0xBEEF).String() != "Field(0xbeef)" {
		t.Fatalf("unexpected unknown name: %s", ID(0xBEEF))
	}
}

func TestFixedTypeAssignments(t *testing.T) {
	cases := map[ID]variant.Type{
		FrameNumber:              variant.TypeU32,
		TimeStamp:                variant.TypeU64,
		HeadPosition:             variant.TypePoint3D,
		HeadRotationQuaternion:   variant.TypeQuaternion,
		CameraPositions:          variant.TypeVector,
		KeyboardState:            variant.TypeString,
		GPSPosition:              variant.TypePoint2D,
		AllWorldIntersections:    variant.TypeWorldIntersections,
		UserMarker:               variant.TypeUserMarker,
		LeftEyelidState:          variant.TypeU8,
		FilteredGazeDirectionQ:   variant.TypeF64,
		RightBlinkClosingMidTime: variant.TypeU64,
	}
	for id, want := range cases {
		s, ok := Lookup(id)
		if !ok || s.Type != want {
			t.Fatalf("%s: got %s want %s", id, s.Type, want)
		}
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/sepdata/internal/protocol/frame"
	"github.com/danmuck/sepdata/internal/protocol/variant"
)

const packetSeparator = "----"

func writePacket(w io.Writer, p frame.Packet) error {
	bw := bufio.NewWriter(w)
	for _, f := range p {
		fmt.Fprintf(bw, "%s = %s\n", f.ID, formatValue(f.Value))
	}
	fmt.Fprintln(bw, packetSeparator)
	return bw.Flush()
}

func formatValue(v variant.Value) string {
	var b strings.Builder
	appendValue(&b, v)
	return b.String()
}

func appendValue(b *strings.Builder, v variant.Value) {
	switch v := v.(type) {
	case variant.U8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case variant.U16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case variant.U32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case variant.U64:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case variant.S32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case variant.F32:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case variant.F64:
		b.WriteString(float(float64(v)))
	case variant.String:
		b.WriteString(strconv.Quote(string(v)))
	case variant.Point2D:
		tuple(b, v.X, v.Y)
	case variant.Vector2D:
		tuple(b, v.X, v.Y)
	case variant.Point3D:
		tuple(b, v.X, v.Y, v.Z)
	case variant.Vector3D:
		tuple(b, v.X, v.Y, v.Z)
	case variant.Quaternion:
		tuple(b, v.W, v.X, v.Y, v.Z)
	case variant.Vector:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			appendValue(b, item)
		}
		b.WriteByte(']')
	case variant.Struct:
		b.WriteByte('{')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.Key)
			b.WriteString(": ")
			appendValue(b, item.Value)
		}
		b.WriteByte('}')
	case variant.OptionalWorldIntersection:
		if !v.Valid {
			b.WriteString("none")
			return
		}
		intersection(b, v.Intersection)
	case variant.WorldIntersections:
		b.WriteByte('[')
		for i, wi := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			intersection(b, wi)
		}
		b.WriteByte(']')
	case variant.OptionalUserMarker:
		if !v.Valid {
			b.WriteString("none")
			return
		}
		m := v.Marker
		fmt.Fprintf(b, "{error: %d, time_stamp: %d, camera_clock: %d, camera_idx: %d, data: %d}",
			m.Error, m.TimeStamp, m.CameraClock, m.CameraIdx, m.Data)
	case nil:
		b.WriteString("<nil>")
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func float(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func tuple(b *strings.Builder, xs ...float64) {
	b.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(float(x))
	}
	b.WriteByte(')')
}

func intersection(b *strings.Builder, wi variant.WorldIntersection) {
	b.WriteString("{world: ")
	tuple(b, wi.WorldPoint.X, wi.WorldPoint.Y, wi.WorldPoint.Z)
	b.WriteString(", object: ")
	tuple(b, wi.ObjectPoint.X, wi.ObjectPoint.Y, wi.ObjectPoint.Z)
	b.WriteString(", name: ")
	b.WriteString(strconv.Quote(wi.ObjectName))
	b.WriteByte('}')
}

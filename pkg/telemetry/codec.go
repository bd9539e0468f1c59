package telemetry

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Packet framing: two sync bytes, packet ID, payload length, payload, and a
// 16-bit additive checksum over ID, length, and payload.
const (
	Sync0 = 0xD0
	Sync1 = 0x5E

	// IDCore identifies the geolocate telemetry core packet.
	IDCore = 0x22

	// coreLength is the fixed payload length of the core packet.
	coreLength = 89

	headerLength   = 4
	checksumLength = 2
)

// Packet is a framed message. Data holds the payload only; framing is added
// by Bytes and stripped by the Reader.
type Packet struct {
	ID   byte
	Data []byte
}

// Bytes returns the fully framed packet, ready for transmission or logging.
func (p *Packet) Bytes() []byte {
	out := make([]byte, 0, headerLength+len(p.Data)+checksumLength)
	out = append(out, Sync0, Sync1, p.ID, byte(len(p.Data)))
	out = append(out, p.Data...)
	return binary.BigEndian.AppendUint16(out, checksum(p.ID, p.Data))
}

func checksum(id byte, data []byte) uint16 {
	sum := uint16(id) + uint16(len(data))
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// EncodeCore encodes a Base record into a core telemetry packet. Only the
// transmitted fields are serialized; derived quantities never cross the wire.
func EncodeCore(b *Base) *Packet {
	w := coreWriter{buf: make([]byte, 0, coreLength)}
	w.u16(b.GPSWeek)
	w.u32(b.ITOW)
	w.u8(b.LeapSeconds)
	w.u32(b.SystemTime)
	w.f64(b.Lat)
	w.f64(b.Lon)
	w.f32(b.Alt)
	w.vec(b.VelNED)
	w.f32(b.GimbalQuat.Real)
	w.f32(b.GimbalQuat.Imag)
	w.f32(b.GimbalQuat.Jmag)
	w.f32(b.GimbalQuat.Kmag)
	w.f32(b.Pan)
	w.f32(b.Tilt)
	w.f32(b.OutputShifts[AxisPan])
	w.f32(b.OutputShifts[AxisTilt])
	w.vec(b.LOSECEF)
	w.u8(b.Mode)
	w.u8(b.Camera)
	return &Packet{ID: IDCore, Data: w.buf}
}

// DecodeCore decodes a core telemetry packet. It returns false when the
// packet ID or payload length does not match the core format.
func DecodeCore(p *Packet) (*Base, bool) {
	if p.ID != IDCore || len(p.Data) != coreLength {
		return nil, false
	}
	r := coreReader{buf: p.Data}
	b := &Base{}
	b.GPSWeek = r.u16()
	b.ITOW = r.u32()
	b.LeapSeconds = r.u8()
	b.SystemTime = r.u32()
	b.Lat = r.f64()
	b.Lon = r.f64()
	b.Alt = r.f32()
	b.VelNED = r.vec()
	b.GimbalQuat = quat.Number{Real: r.f32(), Imag: r.f32(), Jmag: r.f32(), Kmag: r.f32()}
	b.Pan = r.f32()
	b.Tilt = r.f32()
	b.OutputShifts[AxisPan] = r.f32()
	b.OutputShifts[AxisTilt] = r.f32()
	b.LOSECEF = r.vec()
	b.Mode = r.u8()
	b.Camera = r.u8()
	return b, true
}

type coreWriter struct {
	buf []byte
}

func (w *coreWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *coreWriter) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *coreWriter) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *coreWriter) f32(v float64) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, math.Float32bits(float32(v)))
}
func (w *coreWriter) f64(v float64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}
func (w *coreWriter) vec(v r3.Vec) {
	w.f32(v.X)
	w.f32(v.Y)
	w.f32(v.Z)
}

type coreReader struct {
	buf []byte
	off int
}

func (r *coreReader) u8() uint8 {
	b := r.buf[r.off]
	r.off++
	return b
}

func (r *coreReader) u16() uint16 {
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *coreReader) u32() uint32 {
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *coreReader) f32() float64 {
	return float64(math.Float32frombits(r.u32()))
}

func (r *coreReader) f64() float64 {
	v := math.Float64frombits(binary.BigEndian.Uint64(r.buf[r.off:]))
	r.off += 8
	return v
}

func (r *coreReader) vec() r3.Vec {
	return r3.Vec{X: r.f32(), Y: r.f32(), Z: r.f32()}
}

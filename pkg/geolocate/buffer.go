package geolocate

// BufferSize is the capacity of the telemetry history ring. A handful of
// entries is enough to find a pair of attitudes far enough apart in time for
// a rate estimate.
const BufferSize = 4

// Buffer is a fixed-capacity ring of resolved telemetry records, newest
// overwriting oldest. It is not synchronized: one writer may push and readers
// may query between pushes, but concurrent push-during-read must be
// serialized by the caller.
type Buffer struct {
	entries [BufferSize]Telemetry
	in      int // next slot to fill
	holding int // valid entries, saturates at BufferSize
}

// Push copies a resolved record into the ring. Records are stored by value,
// so the buffer never aliases the caller's record.
func (b *Buffer) Push(geo *Telemetry) {
	b.entries[b.in] = *geo
	b.in++
	if b.in >= BufferSize {
		b.in = 0
	}
	if b.holding < BufferSize {
		b.holding++
	}
}

// Len returns the number of valid entries.
func (b *Buffer) Len() int {
	return b.holding
}

// Newest returns the most recently pushed record, or nil if the buffer is
// empty. The pointer aliases buffer storage and is valid until the next Push.
func (b *Buffer) Newest() *Telemetry {
	return b.At(0)
}

// Oldest returns the oldest valid record, or nil if the buffer is empty.
func (b *Buffer) Oldest() *Telemetry {
	if b.holding == 0 {
		return nil
	}
	return b.At(b.holding - 1)
}

// At returns the record age slots behind the newest (At(0) == Newest), or nil
// if fewer than age+1 entries are held. Wraparound arithmetic lives here and
// nowhere else.
func (b *Buffer) At(age int) *Telemetry {
	if age < 0 || age >= b.holding {
		return nil
	}
	idx := b.in - 1 - age
	if idx < 0 {
		idx += BufferSize
	}
	return &b.entries[idx]
}

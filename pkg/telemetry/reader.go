package telemetry

import (
	"bufio"
	"fmt"
	"io"
)

// Reader scans framed packets out of a byte stream, resynchronizing on the
// sync bytes after corruption. Packets with a bad checksum are skipped.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for packet scanning.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next well-formed packet, or io.EOF when the stream ends.
func (s *Reader) Next() (*Packet, error) {
	for {
		if err := s.sync(); err != nil {
			return nil, err
		}

		header := make([]byte, 2)
		if _, err := io.ReadFull(s.r, header); err != nil {
			return nil, eofOr(err)
		}
		id, length := header[0], int(header[1])

		body := make([]byte, length+checksumLength)
		if _, err := io.ReadFull(s.r, body); err != nil {
			return nil, eofOr(err)
		}

		data := body[:length]
		want := uint16(body[length])<<8 | uint16(body[length+1])
		if checksum(id, data) != want {
			// Corrupt frame; rescan from the next sync match.
			continue
		}
		return &Packet{ID: id, Data: data}, nil
	}
}

// sync discards bytes until the two sync bytes have been consumed.
func (s *Reader) sync() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return eofOr(err)
		}
		if b != Sync0 {
			continue
		}
		b, err = s.r.ReadByte()
		if err != nil {
			return eofOr(err)
		}
		if b == Sync1 {
			return nil
		}
		if b == Sync0 {
			// Could be the start of a real header; retry from here.
			if err := s.r.UnreadByte(); err != nil {
				return err
			}
		}
	}
}

func eofOr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return io.EOF
	}
	return fmt.Errorf("packet stream read failed: %w", err)
}

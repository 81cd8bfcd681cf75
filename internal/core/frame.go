package core

// Frame is one length-delimited record as it sits on the wire, before its
// payload has been interpreted: a 2-byte big-endian length (itself
// included), a record-type byte, a data-type byte, and the remaining
// payload bytes.
type Frame struct {
	Offset     int64
	RecordType byte
	DataType   byte
	Payload    []byte
}

// Length returns the on-wire length this frame was declared with,
// including the 4-byte header.
func (f Frame) Length() int {
	return len(f.Payload) + 4
}

// FrameAll splits buf into consecutive Frames. It enforces framing
// totality: frames must tile [0, len(buf)) exactly, with no gap, overlap,
// or trailing partial record. A declared length below 4 is
// ZeroLengthRecord (GDSII forbids empty and headerless records alike); a
// declared length that runs past the end of buf is TruncatedBuffer.
func FrameAll(buf []byte) ([]Frame, error) {
	var frames []Frame
	offset := int64(0)
	for offset < int64(len(buf)) {
		remaining := buf[offset:]
		if len(remaining) < 4 {
			return nil, NewErrorAt(KindTruncatedBuffer, offset,
				"fewer than 4 bytes remain for a record header")
		}
		declared := int(uint16(remaining[0])<<8 | uint16(remaining[1]))
		if declared < 4 {
			return nil, NewErrorAt(KindZeroLengthRecord, offset,
				"record length must be at least 4 bytes")
		}
		if declared%2 != 0 {
			return nil, NewErrorAt(KindMalformedRecord, offset,
				"record length must be even")
		}
		if declared > len(remaining) {
			return nil, NewErrorAt(KindTruncatedBuffer, offset,
				"record length extends past the end of the buffer")
		}
		frames = append(frames, Frame{
			Offset:     offset,
			RecordType: remaining[2],
			DataType:   remaining[3],
			Payload:    remaining[4:declared],
		})
		offset += int64(declared)
	}
	return frames, nil
}

package session

// Buffer is the session's receive buffer: a growable-but-capped byte deque
// with explicit Compact(n) semantics, re-architecting the original source's
// pointer-arithmetic/memmove ring buffer (spec.md §9) and generalizing the
// teacher's append-then-reslice idiom in internal/parser/ubx.go's Process
// with a hard capacity ceiling the teacher's version lacks.
type Buffer struct {
	data []byte
	cap  int
}

// NewBuffer allocates a buffer with the given capacity; capacity must be at
// least ubx.MinFrameLen+ubx.MaxPayloadLen (1208) to ever hold a full frame.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity), cap: capacity}
}

// Append adds chunk to the buffer, truncating the chunk (dropping its tail)
// if the buffer would otherwise exceed its capacity, matching spec.md
// §4.8's "appends chunk into the receive buffer with truncation to
// capacity."
func (b *Buffer) Append(chunk []byte) {
	room := b.cap - len(b.data)
	if room <= 0 {
		return
	}
	if len(chunk) > room {
		chunk = chunk[:room]
	}
	b.data = append(b.data, chunk...)
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes currently buffered.
func (b *Buffer) Len() int { return len(b.data) }

// Compact drops the first n bytes, sliding the remainder to the front. An n
// larger than Len() empties the buffer; n <= 0 does nothing.
func (b *Buffer) Compact(n int) {
	if n <= 0 {
		return
	}
	if n > len(b.data) {
		n = len(b.data)
	}
	copy(b.data, b.data[n:])
	b.data = b.data[:len(b.data)-n]
}

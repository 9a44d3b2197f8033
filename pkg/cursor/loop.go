package cursor

// ReadCounted reads a u32 element count followed by that many elements,
// decoding each with read. The result keeps read order. The count is not
// checked against the remaining length up front: an oversized count fails
// through the element decoder's own bounds check.
func ReadCounted[T any](r *Reader, read func(*Reader) (T, error)) ([]T, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, WithField("count", err)
	}

	// Every element consumes at least one byte, so the remaining length
	// bounds any sane count.
	hint := int(count)
	if rem := r.Remaining(); uint64(count) > uint64(rem) {
		hint = rem
	}
	out := make([]T, 0, hint)
	for i := uint32(0); i < count; i++ {
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteCounted writes len(items) as u32 followed by each element.
func WriteCounted[T any](w *Writer, items []T, write func(*Writer, T)) {
	w.WriteUint32(uint32(len(items)))
	for _, item := range items {
		write(w, item)
	}
}

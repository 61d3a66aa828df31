package buffer

// Insert splices text immediately before the character at loc and returns
// the records created for it.
//
// When no character occupies loc (an empty document, a location past the end
// of a line, or any other out-of-range address) text is appended at the end
// of the buffer instead.
func (b *Buffer) Insert(loc Location, text string) []Character {
	ins := []rune(text)
	if len(ins) == 0 {
		return nil
	}

	start := len(b.raw)
	if c, ok := b.Get(loc); ok {
		start = c.Index
	}

	next := make([]rune, 0, len(b.raw)+len(ins))
	next = append(next, b.raw[:start]...)
	next = append(next, ins...)
	next = append(next, b.raw[start:]...)
	b.raw = next
	b.version++
	b.parse()

	return append([]Character(nil), b.parsed[start:start+len(ins)]...)
}

// Remove deletes every character whose Location lies in r.
//
// Empty ranges and ranges that match no character leave the buffer untouched.
func (b *Buffer) Remove(r Range) {
	if r.IsEmpty() {
		return
	}

	removed := 0
	for _, c := range b.parsed {
		if !r.Contains(c.Location) {
			continue
		}
		// Earlier deletions in this loop shifted the tail left.
		idx := c.Index - removed
		b.raw = append(b.raw[:idx], b.raw[idx+1:]...)
		removed++
	}
	if removed == 0 {
		return
	}
	b.version++
	b.parse()
}

package buffer

// Get returns the character whose Location equals loc.
func (b *Buffer) Get(loc Location) (Character, bool) {
	for _, c := range b.parsed {
		if c.Location == loc {
			return c, true
		}
	}
	return Character{}, false
}

// Before returns the character immediately preceding the one at loc.
//
// When nothing occupies loc, Before falls back to the last character of the
// document. This lets a cursor parked past the end delete backwards.
func (b *Buffer) Before(loc Location) (Character, bool) {
	c, ok := b.Get(loc)
	if !ok {
		return b.Last()
	}
	if c.Index == 0 {
		return Character{}, false
	}
	return b.parsed[c.Index-1], true
}

// After returns the character immediately following the one at loc.
//
// Unlike Before, a location that nothing occupies yields no character.
func (b *Buffer) After(loc Location) (Character, bool) {
	c, ok := b.Get(loc)
	if !ok || c.Index+1 >= len(b.parsed) {
		return Character{}, false
	}
	return b.parsed[c.Index+1], true
}

func (b *Buffer) Last() (Character, bool) {
	if len(b.parsed) == 0 {
		return Character{}, false
	}
	return b.parsed[len(b.parsed)-1], true
}

// IsOutOfDocument reports whether loc lies after the last character.
// Every location is out of an empty document.
func (b *Buffer) IsOutOfDocument(loc Location) bool {
	last, ok := b.Last()
	if !ok {
		return true
	}
	return CompareLocation(loc, last.Location) > 0
}

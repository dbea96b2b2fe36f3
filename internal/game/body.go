package game

// Body is the chain of segments trailing the head. Index 0 is the segment
// right behind the head. It only ever grows.
type Body struct {
	segs []Position
}

func (b *Body) Len() int { return len(b.segs) }

func (b *Body) Segments() []Position {
	out := make([]Position, len(b.segs))
	copy(out, b.segs)
	return out
}

func (b *Body) Contains(p Position) bool {
	for _, s := range b.segs {
		if s == p {
			return true
		}
	}
	return false
}

// Follow moves every segment to where its predecessor was one tick ago, with
// lead as the head's position before it moves. With grow set the vacated
// tail cell is kept as a new segment. At most one segment is added per call.
func (b *Body) Follow(lead Position, grow bool) bool {
	if len(b.segs) == 0 {
		if !grow {
			return false
		}
		b.segs = append(b.segs, lead)
		return true
	}
	vacated := b.segs[len(b.segs)-1]
	copy(b.segs[1:], b.segs[:len(b.segs)-1])
	b.segs[0] = lead
	if grow {
		b.segs = append(b.segs, vacated)
	}
	return grow
}

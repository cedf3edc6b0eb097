package codec

// discriminant of a rectangle's content, matching the classic
// none/bitmap/text/ass numbering
type RectType int

const (
	RectNone RectType = iota
	RectBitmap
	RectText
	RectASS
)

func (t RectType) String() string {
	switch t {
	case RectBitmap:
		return "bitmap"
	case RectText:
		return "text"
	case RectASS:
		return "ass"
	default:
		return "none"
	}
}

// one decoded subtitle region; a read-only view owned by its Subtitle
type Rect struct {
	Type RectType
	Text string
}

// one decoded subtitle unit holding zero or more rectangles, released
// exactly once via Free after its rectangles are consumed
type Subtitle struct {
	rects []Rect
	freed bool
}

// Rects returns the unit's rectangles in stored order. Nil after Free.
func (s *Subtitle) Rects() []Rect {
	return s.rects
}

// Free releases the unit's rectangles; safe to call more than once.
func (s *Subtitle) Free() {
	if s.freed {
		return
	}
	s.rects = nil
	s.freed = true
}

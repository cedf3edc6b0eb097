package codec

import (
	"fmt"
	"strings"

	"subtext/internal/media"
)

// raw text decoder: the packet payload passes through untouched as a
// single plain-text rectangle
type textDecoder struct{}

func newTextDecoder() *textDecoder {
	return &textDecoder{}
}

func (d *textDecoder) setOption(key, value string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

func (d *textDecoder) open() error {
	return nil
}

func (d *textDecoder) decode(pkt *media.Packet) (*Subtitle, bool, error) {
	if pkt == nil {
		return nil, false, fmt.Errorf("decode called without a packet")
	}

	text := strings.TrimRight(string(pkt.Data), "\r\n\x00")
	if text == "" {
		return nil, false, nil
	}

	return &Subtitle{rects: []Rect{{Type: RectText, Text: text}}}, true, nil
}

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"subtext/internal/media"
)

// SubRip text decoder. Each packet carries one cue's markup text; the
// decoder rewrites it as an ASS dialogue event, the way the srt codec
// family presents decoded cues.
type srtDecoder struct {
	keepTags  bool
	readOrder int
}

func newSRTDecoder() *srtDecoder {
	return &srtDecoder{}
}

func (d *srtDecoder) setOption(key, value string) error {
	switch key {
	case "keep_tags":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("option keep_tags: %q is not a boolean", value)
		}
		d.keepTags = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
}

func (d *srtDecoder) open() error {
	return nil
}

func (d *srtDecoder) decode(pkt *media.Packet) (*Subtitle, bool, error) {
	if pkt == nil {
		return nil, false, fmt.Errorf("decode called without a packet")
	}

	text := strings.TrimRight(string(pkt.Data), "\r\n\x00 \t")
	if text == "" {
		return nil, false, nil
	}

	if !d.keepTags {
		text = srtMarkupToASS(text)
	} else {
		text = strings.ReplaceAll(text, "\r\n", "\\N")
		text = strings.ReplaceAll(text, "\n", "\\N")
	}

	event := fmt.Sprintf("%d,0,Default,,0,0,0,,%s", d.readOrder, text)
	d.readOrder++

	return &Subtitle{rects: []Rect{{Type: RectASS, Text: event}}}, true, nil
}

// srtMarkupToASS rewrites SubRip inline markup as ASS override tags:
// <i>/<b>/<u>/<s> pairs become {\i1}..{\i0} style overrides, font tags
// are dropped, line breaks become \N, and anything unrecognized passes
// through literally.
func srtMarkupToASS(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch c {
		case '\r':
			continue
		case '\n':
			out.WriteString("\\N")
			continue
		case '<':
			end := strings.IndexByte(text[i:], '>')
			if end < 0 {
				out.WriteByte(c)
				continue
			}
			tag := text[i+1 : i+end]
			if repl, ok := assOverride(tag); ok {
				out.WriteString(repl)
				i += end
				continue
			}
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

func assOverride(tag string) (string, bool) {
	closing := strings.HasPrefix(tag, "/")
	name := strings.ToLower(strings.TrimPrefix(tag, "/"))

	switch {
	case name == "i" || name == "b" || name == "u" || name == "s":
		if closing {
			return "{\\" + name + "0}", true
		}
		return "{\\" + name + "1}", true
	case name == "font" || strings.HasPrefix(name, "font "):
		// styling is not preserved
		return "", true
	default:
		return "", false
	}
}

package codec

import (
	"errors"
	"fmt"

	"subtext/internal/media"
)

var (
	ErrDecoderNotFound = errors.New("decoder not found")
	ErrUnknownOption   = errors.New("unknown decoder option")
)

// per-packet decode implementation behind a Context
type decoder interface {
	// validates and stages an option before open
	setOption(key, value string) error
	// applies staged options and readies the decoder
	open() error
	// decodes one packet; got reports whether a complete unit was produced
	decode(pkt *media.Packet) (sub *Subtitle, got bool, err error)
}

// a registered decoder descriptor
type Codec struct {
	Name     string
	LongName string
	aliases  []string
	factory  func() decoder
}

var registry = []*Codec{
	{
		Name:     "srt",
		LongName: "SubRip subtitle",
		aliases:  []string{"subrip"},
		factory:  func() decoder { return newSRTDecoder() },
	},
	{
		Name:     "text",
		LongName: "Raw text subtitle",
		factory:  func() decoder { return newTextDecoder() },
	},
}

// FindDecoderByName looks a decoder up by its registered name or alias.
func FindDecoderByName(name string) (*Codec, error) {
	for _, c := range registry {
		if c.Name == name {
			return c, nil
		}
		for _, a := range c.aliases {
			if a == name {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDecoderNotFound, name)
}

// Context owns the state of one decoder instance: allocated, then
// configured via options, then opened, then fed packets.
type Context struct {
	codec  *Codec
	dec    decoder
	opened bool
	freed  bool
}

// NewContext allocates decode state for the codec.
func NewContext(c *Codec) *Context {
	return &Context{codec: c, dec: c.factory()}
}

func (ctx *Context) Codec() *Codec {
	return ctx.codec
}

// SetOption validates an option against the decoder before open.
// Unknown keys or bad values fail immediately.
func (ctx *Context) SetOption(key, value string) error {
	if ctx.opened {
		return fmt.Errorf("option %q set after open", key)
	}
	if ctx.freed {
		return errors.New("option set on freed decoder context")
	}
	return ctx.dec.setOption(key, value)
}

// Open readies the decoder with its staged options.
func (ctx *Context) Open() error {
	if ctx.freed {
		return errors.New("open on freed decoder context")
	}
	if ctx.opened {
		return errors.New("decoder context opened twice")
	}
	if err := ctx.dec.open(); err != nil {
		return err
	}
	ctx.opened = true
	return nil
}

// DecodeSubtitle feeds one packet to the decoder. got reports whether a
// complete subtitle unit was produced; the caller must Free the unit
// exactly when got is true.
func (ctx *Context) DecodeSubtitle(pkt *media.Packet) (*Subtitle, bool, error) {
	if !ctx.opened || ctx.freed {
		return nil, false, errors.New("decode on unopened decoder context")
	}
	return ctx.dec.decode(pkt)
}

// Free releases the context; safe to call more than once.
func (ctx *Context) Free() {
	ctx.freed = true
	ctx.opened = false
}

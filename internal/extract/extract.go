package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"subtext/internal/codec"
	"subtext/internal/config"
	"subtext/internal/logging"
	"subtext/internal/media"
)

// source of demuxed packets, drained until io.EOF
type packetSource interface {
	ReadPacket(pkt *media.Packet) error
}

// decoder fed one packet at a time
type subtitleDecoder interface {
	DecodeSubtitle(pkt *media.Packet) (*codec.Subtitle, bool, error)
	Free()
}

// Pipeline runs one single-shot extraction: open the input, set up the
// configured decoder, drain packets, and print one line per decoded
// rectangle. Any fatal condition aborts the whole run; lines already
// written stand.
type Pipeline struct {
	cfg *config.Config
	out io.Writer
	log *logging.Logger

	emitted int
}

func New(cfg *config.Config, out io.Writer, log *logging.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, out: out, log: log}
}

// Run extracts subtitle text from the container at path. All acquired
// resources are released on every exit path.
func (p *Pipeline) Run(path string) error {
	// raw open probes existence and permissions so those failures
	// surface with the OS error text rather than a demux diagnostic
	probe, err := os.Open(path)
	if err != nil {
		return osError(path, err)
	}
	defer probe.Close()

	container, err := media.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer container.Close()

	p.log.Debugw("opened container",
		"input", path,
		"format", container.Format.FormatName,
		"streams", len(container.Streams),
	)
	for _, s := range container.Streams {
		p.log.Debugw("stream",
			"index", s.Index,
			"codec", s.CodecName,
			"type", s.CodecType,
			"language", s.Language,
		)
	}

	dec, err := p.initializeDecoder()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer dec.Free()

	if err := p.runPacketLoop(container, dec); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	p.log.Debugw("extraction finished", "input", path, "rectangles", p.emitted)
	return nil
}

// initializeDecoder resolves the configured decoder, applies its
// options, and opens it. A partially-built context is freed before the
// failure propagates.
func (p *Pipeline) initializeDecoder() (*codec.Context, error) {
	c, err := codec.FindDecoderByName(p.cfg.Decoder.Name)
	if err != nil {
		return nil, err
	}

	ctx := codec.NewContext(c)

	keys := make([]string, 0, len(p.cfg.Decoder.Options))
	for k := range p.cfg.Decoder.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := ctx.SetOption(k, p.cfg.Decoder.Options[k]); err != nil {
			ctx.Free()
			return nil, fmt.Errorf("failed to configure decoder: %w", err)
		}
	}

	if err := ctx.Open(); err != nil {
		ctx.Free()
		return nil, fmt.Errorf("failed to open decoder: %w", err)
	}

	p.log.Debugw("decoder ready", "name", c.Name, "options", len(keys))
	return ctx, nil
}

// runPacketLoop reads packets until end-of-stream and feeds each to
// the decoder.
func (p *Pipeline) runPacketLoop(src packetSource, dec subtitleDecoder) error {
	var pkt media.Packet

	for {
		err := src.ReadPacket(&pkt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read packet: %w", err)
		}

		if err := p.processPacket(&pkt, dec); err != nil {
			return err
		}
	}
}

// processPacket decodes one packet and emits any produced unit. The
// packet buffer is unreferenced on every path, decode failure
// included; a produced unit is freed exactly when the got flag was
// set.
func (p *Pipeline) processPacket(pkt *media.Packet, dec subtitleDecoder) error {
	defer pkt.Unref()

	sub, got, err := dec.DecodeSubtitle(pkt)
	if err != nil {
		return fmt.Errorf("failed to decode subtitle: %w", err)
	}
	if !got {
		return nil
	}
	defer sub.Free()

	return p.emitRectangles(sub)
}

// emitRectangles writes one line per rectangle in stored order. The
// text payload is printed raw, absent text as the empty string.
func (p *Pipeline) emitRectangles(sub *codec.Subtitle) error {
	for _, r := range sub.Rects() {
		if _, err := fmt.Fprintf(p.out, "type: %d text:%s\n", r.Type, r.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		p.emitted++
	}
	return nil
}

// osError reports a raw open failure as "<path>: <os-error-text>",
// unwrapping the PathError so the path is not repeated.
func osError(path string, err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return fmt.Errorf("%s: %w", path, pe.Err)
	}
	return fmt.Errorf("%s: %w", path, err)
}

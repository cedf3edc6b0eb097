package media

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "subtext/internal/ffmpeg"
)

// container-level metadata from the probe's format section
type FormatInfo struct {
	FormatName     string
	FormatLongName string
	NbStreams      int
	Duration       string
}

// per-stream metadata, used for diagnostics
type StreamInfo struct {
	Index     int
	CodecName string
	CodecType string
	Language  string
}

// an open input container; packets are drained in stream order via
// ReadPacket until io.EOF
type Container struct {
	Path    string
	Format  FormatInfo
	Streams []StreamInfo

	packets []Packet
	next    int
	closed  bool
}

// Open demuxes the container at path through ffprobe. A single probe
// call returns the format, the stream table, and every packet with its
// payload; ReadPacket then drains them sequentially. Open fails when
// the demux layer cannot recognize or read the container.
func Open(path string) (*Container, error) {
	raw, err := runProbe(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}

	c, err := ParseProbeJSON([]byte(raw))
	if err != nil {
		return nil, err
	}
	c.Path = path
	return c, nil
}

// runProbe returns the ffprobe JSON document for path. ffmpeg-go
// invokes the ffprobe on PATH; an explicit binary override runs the
// same invocation directly.
func runProbe(path string) (string, error) {
	if custom := os.Getenv(ffmpegbin.FFprobeEnv); custom != "" {
		out, err := exec.Command(custom,
			"-show_format", "-show_streams", "-of", "json",
			"-show_packets", "-show_data", "-v", "error",
			path,
		).Output()
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return ffmpeg.Probe(path, ffmpeg.KwArgs{
		"show_packets": "",
		"show_data":    "",
		"v":            "error",
	})
}

// ParseProbeJSON converts a raw ffprobe JSON document into a Container.
// Exported for testing without a real ffprobe binary.
func ParseProbeJSON(data []byte) (*Container, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse probe JSON: %w", err)
	}

	c := &Container{
		Format: FormatInfo{
			FormatName:     raw.Format.FormatName,
			FormatLongName: raw.Format.FormatLongName,
			NbStreams:      raw.Format.NbStreams,
			Duration:       raw.Format.Duration,
		},
	}

	for _, s := range raw.Streams {
		c.Streams = append(c.Streams, StreamInfo{
			Index:     s.Index,
			CodecName: s.CodecName,
			CodecType: s.CodecType,
			Language:  s.Tags["language"],
		})
	}

	for i, p := range raw.Packets {
		size, err := strconv.Atoi(p.Size)
		if err != nil {
			return nil, fmt.Errorf("packet %d: bad size %q", i, p.Size)
		}
		payload, err := decodeHexDump(p.Data, size)
		if err != nil {
			return nil, fmt.Errorf("packet %d: %w", i, err)
		}
		c.packets = append(c.packets, Packet{
			StreamIndex: p.StreamIndex,
			CodecType:   p.CodecType,
			PTS:         p.PTS,
			DTS:         p.DTS,
			Duration:    p.Duration,
			Data:        payload,
		})
	}

	return c, nil
}

// ReadPacket fills pkt with the next packet, or returns io.EOF at
// end-of-stream. The caller owns pkt and must Unref it between reads.
func (c *Container) ReadPacket(pkt *Packet) error {
	if c.closed {
		return fmt.Errorf("read on closed container")
	}
	if c.next >= len(c.packets) {
		return io.EOF
	}
	*pkt = c.packets[c.next]
	c.next++
	return nil
}

// Close releases the container; idempotent.
func (c *Container) Close() error {
	c.packets = nil
	c.closed = true
	return nil
}

// --- ffprobe JSON wire types ---

type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
	Packets []probePacket `json:"packets"`
}

type probeFormat struct {
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	NbStreams      int    `json:"nb_streams"`
	Duration       string `json:"duration"`
}

type probeStream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Tags      map[string]string `json:"tags"`
}

type probePacket struct {
	CodecType   string `json:"codec_type"`
	StreamIndex int    `json:"stream_index"`
	PTS         int64  `json:"pts"`
	DTS         int64  `json:"dts"`
	Duration    int64  `json:"duration"`
	Size        string `json:"size"`
	Data        string `json:"data"`
}

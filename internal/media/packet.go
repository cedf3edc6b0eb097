package media

// one demuxed unit of container-encoded data; reused across read
// iterations by refilling the same struct
type Packet struct {
	StreamIndex int
	CodecType   string
	PTS         int64
	DTS         int64
	Duration    int64
	Data        []byte
}

// Unref releases the packet's payload so the struct can be refilled.
// Safe to call more than once.
func (p *Packet) Unref() {
	p.Data = nil
}

package axis

import "github.com/sarchlab/akita/v4/sim"

// BeatMsg carries one beat from a stream port to another.
type BeatMsg struct {
	sim.MsgMeta

	Beat Beat
}

// Meta returns the meta data of the msg.
func (m *BeatMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a fresh ID.
func (m *BeatMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()

	return &clone
}

// BeatMsgBuilder is a factory for BeatMsg.
type BeatMsgBuilder struct {
	src, dst sim.RemotePort
	beat     Beat
}

// WithSrc sets the source port of the msg.
func (b BeatMsgBuilder) WithSrc(src sim.RemotePort) BeatMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b BeatMsgBuilder) WithDst(dst sim.RemotePort) BeatMsgBuilder {
	b.dst = dst
	return b
}

// WithBeat sets the beat carried by the msg.
func (b BeatMsgBuilder) WithBeat(beat Beat) BeatMsgBuilder {
	b.beat = beat
	return b
}

// Build creates a BeatMsg.
func (b BeatMsgBuilder) Build() *BeatMsg {
	return &BeatMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Beat: b.beat,
	}
}

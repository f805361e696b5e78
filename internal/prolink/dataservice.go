package prolink

// Slot identifies where a track is loaded from on the player.
type Slot int

const (
	SlotUSB Slot = iota + 1
	SlotSD
	SlotCD
	SlotRekordbox
)

func (s Slot) String() string {
	switch s {
	case SlotUSB:
		return "usb"
	case SlotSD:
		return "sd"
	case SlotCD:
		return "cd"
	case SlotRekordbox:
		return "rekordbox"
	default:
		return "unknown"
	}
}

// Reply is one asynchronous answer from the data service. Each variant
// carries its own typed payload; consumers dispatch with a type switch.
// Track-scoped replies echo the epoch of the request that caused them so a
// late answer for a previous track can be discarded.
type Reply interface {
	reply()
}

// StatusReply is the live deck state, pushed continuously rather than
// requested, so it carries no epoch.
type StatusReply struct {
	Player   int
	Model    string
	Address  string
	TrackID  uint32
	Slot     Slot
	BPM      float64
	Pitch    float64 // multiplier, 1.0 = neutral
	Beat     int     // beat-in-bar 1..4, 0 when unknown
	Progress float64 // relative playback position 0..1
	Master   bool
}

// MetadataReply carries the track label fields in device wire form,
// UTF-16BE. See DecodeDeviceString.
type MetadataReply struct {
	Player    int
	Epoch     uint64
	Title     []byte
	Artist    []byte
	Album     []byte
	ArtworkID uint32
}

// WaveformReply carries the raw detail waveform buffer.
type WaveformReply struct {
	Player int
	Epoch  uint64
	Data   []byte
}

// PreviewReply carries the raw whole-track preview buffer.
type PreviewReply struct {
	Player int
	Epoch  uint64
	Data   []byte
}

// BeatgridReply carries the raw beat-grid buffer.
type BeatgridReply struct {
	Player int
	Epoch  uint64
	Data   []byte
}

// ArtworkReply carries encoded artwork bytes.
type ArtworkReply struct {
	Player int
	Epoch  uint64
	Data   []byte
}

func (StatusReply) reply()   {}
func (MetadataReply) reply() {}
func (WaveformReply) reply() {}
func (PreviewReply) reply()  {}
func (BeatgridReply) reply() {}
func (ArtworkReply) reply()  {}

// Source is the data-service collaborator: it pushes deck status and
// answers track requests asynchronously on a single reply channel. Requests
// never block and replies may arrive in any order or not at all; the
// requester's epoch makes late replies safe to drop.
type Source interface {
	Replies() <-chan Reply
	RequestTrack(player int, slot Slot, trackID uint32, epoch uint64)
	Close()
}

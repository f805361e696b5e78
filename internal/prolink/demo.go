package prolink

import (
	"math"
	"time"

	"deckwav/pkg/wave"
)

// DemoSource fabricates a single plausible deck so the monitor can run
// without a device on the network: it pushes status at a steady cadence,
// loops a synthetic track, and answers track requests with generated
// waveform, preview, beat-grid and metadata buffers after short delays.
type DemoSource struct {
	bpm      float64
	trackLen time.Duration

	replies  chan Reply
	requests chan trackRequest
	done     chan struct{}
}

type trackRequest struct {
	player  int
	trackID uint32
	epoch   uint64
}

type demoTrack struct {
	title, artist, album string
}

var demoTracks = []demoTrack{
	{"Midnight Loop", "Polar Circuit", "Night Shift"},
	{"Cold Start", "Analog Theory", "Boot Sequence"},
	{"Four To The Floor", "Binary Drift", "Phase Lock"},
}

// NewDemoSource starts a synthetic deck playing looping tracks at the given
// tempo and length.
func NewDemoSource(bpm float64, trackSeconds int) *DemoSource {
	if bpm <= 0 {
		bpm = 128
	}
	if trackSeconds <= 0 {
		trackSeconds = 180
	}
	s := &DemoSource{
		bpm:      bpm,
		trackLen: time.Duration(trackSeconds) * time.Second,
		replies:  make(chan Reply, 16),
		requests: make(chan trackRequest, 8),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *DemoSource) Replies() <-chan Reply {
	return s.replies
}

func (s *DemoSource) RequestTrack(player int, slot Slot, trackID uint32, epoch uint64) {
	select {
	case s.requests <- trackRequest{player: player, trackID: trackID, epoch: epoch}:
	case <-s.done:
	}
}

func (s *DemoSource) Close() {
	close(s.done)
}

func (s *DemoSource) run() {
	status := time.NewTicker(100 * time.Millisecond)
	defer status.Stop()

	trackID := uint32(1)
	trackStart := time.Now()
	beatLen := time.Duration(float64(time.Minute) / s.bpm)

	for {
		select {
		case <-s.done:
			return

		case <-status.C:
			elapsed := time.Since(trackStart)
			if elapsed >= s.trackLen {
				// Track ran out: the deck loads the next one.
				trackID++
				trackStart = time.Now()
				elapsed = 0
			}
			beat := int(elapsed/beatLen)%4 + 1
			s.send(StatusReply{
				Player:   1,
				Model:    "demo deck",
				Address:  "127.0.0.1",
				TrackID:  trackID,
				Slot:     SlotUSB,
				BPM:      s.bpm,
				Pitch:    1.0,
				Beat:     beat,
				Progress: elapsed.Seconds() / s.trackLen.Seconds(),
				Master:   true,
			})

		case req := <-s.requests:
			s.deliverTrack(req)
		}
	}
}

// deliverTrack answers one track request the way the real data service
// does: each buffer independently, staggered in time.
func (s *DemoSource) deliverTrack(req trackRequest) {
	meta := demoTracks[int(req.trackID)%len(demoTracks)]
	s.sendAfter(30*time.Millisecond, MetadataReply{
		Player: req.player,
		Epoch:  req.epoch,
		Title:  EncodeDeviceString(meta.title),
		Artist: EncodeDeviceString(meta.artist),
		Album:  EncodeDeviceString(meta.album),
	})
	s.sendAfter(60*time.Millisecond, PreviewReply{
		Player: req.player,
		Epoch:  req.epoch,
		Data:   s.previewData(req.trackID),
	})
	s.sendAfter(90*time.Millisecond, BeatgridReply{
		Player: req.player,
		Epoch:  req.epoch,
		Data:   s.beatgridData(),
	})
	s.sendAfter(120*time.Millisecond, WaveformReply{
		Player: req.player,
		Epoch:  req.epoch,
		Data:   s.waveformData(req.trackID),
	})
}

func (s *DemoSource) send(r Reply) {
	select {
	case s.replies <- r:
	case <-s.done:
	}
}

func (s *DemoSource) sendAfter(d time.Duration, r Reply) {
	time.AfterFunc(d, func() { s.send(r) })
}

// waveformData synthesizes a detail buffer: a slow energy envelope with a
// per-beat pump, packed as color<<5 | amplitude per byte after the header.
func (s *DemoSource) waveformData(trackID uint32) []byte {
	n := int(s.trackLen.Seconds()) * wave.SampleRate
	buf := make([]byte, wave.HeaderLen+n)
	beatSamples := 60.0 / s.bpm * wave.SampleRate
	for i := 0; i < n; i++ {
		phase := float64(i) / beatSamples * 2 * math.Pi
		envelope := 0.55 + 0.35*math.Sin(float64(i)/1800+float64(trackID))
		pump := 0.6 + 0.4*math.Abs(math.Cos(phase/2))
		amp := int(31 * envelope * pump)
		if amp > 31 {
			amp = 31
		}
		color := amp >> 2
		buf[wave.HeaderLen+i] = byte(color<<5 | amp)
	}
	return buf
}

// previewData synthesizes the 400-sample whole-track strip.
func (s *DemoSource) previewData(trackID uint32) []byte {
	buf := make([]byte, 2*wave.PreviewWidth)
	for x := 0; x < wave.PreviewWidth; x++ {
		envelope := 0.55 + 0.35*math.Sin(float64(x)/40+float64(trackID))
		height := 2 + int(21*envelope)
		if height > 23 {
			height = 23
		}
		buf[2*x] = byte(height)
		buf[2*x+1] = byte(height / 4)
	}
	return buf
}

// beatgridData lays a steady grid over the whole track at the demo tempo.
func (s *DemoSource) beatgridData() []byte {
	beatMs := 60000 / s.bpm
	total := int(s.trackLen.Milliseconds())
	var markers []wave.BeatMarker
	for i := 0; ; i++ {
		t := int(float64(i) * beatMs)
		if t >= total {
			break
		}
		markers = append(markers, wave.BeatMarker{TimeMs: t, BeatInBar: i%4 + 1})
	}
	return EncodeBeatgrid(markers, s.bpm)
}

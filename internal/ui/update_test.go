package ui

import (
	"testing"

	"deckwav/internal/prolink"
	"deckwav/pkg/wave"
)

// stubSource records track requests and never replies on its own.
type stubSource struct {
	replies  chan prolink.Reply
	requests []uint64
	closed   bool
}

func newStubSource() *stubSource {
	return &stubSource{replies: make(chan prolink.Reply, 1)}
}

func (s *stubSource) Replies() <-chan prolink.Reply { return s.replies }

func (s *stubSource) RequestTrack(player int, slot prolink.Slot, trackID uint32, epoch uint64) {
	s.requests = append(s.requests, epoch)
}

func (s *stubSource) Close() { s.closed = true }

func status(player int, trackID uint32) prolink.StatusReply {
	return prolink.StatusReply{
		Player:   player,
		Model:    "test deck",
		TrackID:  trackID,
		Slot:     prolink.SlotUSB,
		BPM:      128,
		Pitch:    1.0,
		Beat:     1,
		Progress: 0.1,
	}
}

func dispatch(t *testing.T, m Model, replies ...prolink.Reply) Model {
	t.Helper()
	for _, r := range replies {
		next, _ := m.handleReply(r)
		m = next.(Model)
	}
	return m
}

func TestStatusCreatesPlayerAndRequestsTrack(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)

	m = dispatch(t, m, status(1, 42))

	p, ok := m.players[1]
	if !ok {
		t.Fatal("status reply did not create the player")
	}
	if p.trackID != 42 {
		t.Errorf("trackID = %d, want 42", p.trackID)
	}
	if len(src.requests) != 1 || src.requests[0] != p.epoch {
		t.Errorf("requests = %v, want one with epoch %d", src.requests, p.epoch)
	}

	// Same track again: no new request.
	m = dispatch(t, m, status(1, 42))
	if len(src.requests) != 1 {
		t.Errorf("repeated status re-requested the track")
	}
}

func TestTrackChangeBumpsEpoch(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)

	m = dispatch(t, m, status(1, 42), status(1, 43))
	if len(src.requests) != 2 || src.requests[1] != src.requests[0]+1 {
		t.Fatalf("requests = %v, want consecutive epochs", src.requests)
	}
}

func TestStaleEpochReplyDropped(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)
	m = dispatch(t, m, status(1, 42), status(1, 43))

	p := m.players[1]
	stale := p.epoch - 1

	m = dispatch(t, m, prolink.WaveformReply{Player: 1, Epoch: stale, Data: waveformBytes(300)})
	if p.samples != nil {
		t.Errorf("stale waveform reply was applied")
	}

	m = dispatch(t, m, prolink.WaveformReply{Player: 1, Epoch: p.epoch, Data: waveformBytes(300)})
	if p.samples == nil {
		t.Errorf("current-epoch waveform reply was dropped")
	}
}

func TestReplyForUnknownPlayerDropped(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)

	// Must not panic or create a player.
	m = dispatch(t, m,
		prolink.WaveformReply{Player: 9, Epoch: 1, Data: waveformBytes(10)},
		prolink.BeatgridReply{Player: 9, Epoch: 1, Data: nil},
		prolink.PreviewReply{Player: 9, Epoch: 1, Data: nil},
	)
	if len(m.players) != 0 {
		t.Errorf("track reply created a player")
	}
}

func TestMetadataReplyDecodesLabels(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)
	m = dispatch(t, m, status(1, 42))
	p := m.players[1]

	m = dispatch(t, m, prolink.MetadataReply{
		Player: 1,
		Epoch:  p.epoch,
		Title:  prolink.EncodeDeviceString("Midnight Loop"),
		Artist: prolink.EncodeDeviceString("Polar Circuit"),
		Album:  prolink.EncodeDeviceString("Night Shift"),
	})
	if p.title != "Midnight Loop" || p.artist != "Polar Circuit" {
		t.Errorf("labels = %q / %q", p.title, p.artist)
	}
}

func TestBeatgridReplyAppliesGrid(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)
	m = dispatch(t, m, status(1, 42))
	p := m.players[1]

	m = dispatch(t, m,
		prolink.WaveformReply{Player: 1, Epoch: p.epoch, Data: waveformBytes(300)},
		prolink.BeatgridReply{Player: 1, Epoch: p.epoch, Data: prolink.EncodeBeatgrid(
			[]wave.BeatMarker{{TimeMs: 0, BeatInBar: 1}}, 128)},
	)
	if len(p.markers) != 1 {
		t.Errorf("markers = %d, want 1", len(p.markers))
	}
}

func TestStatusUpdatesIndicators(t *testing.T) {
	src := newStubSource()
	m := NewModel(testConfig(), src, 80, 24)
	m = dispatch(t, m, status(1, 42))
	p := m.players[1]

	s := status(1, 42)
	s.Beat = 3
	s.Progress = 0.5
	s.Master = true
	m = dispatch(t, m, s)

	if p.beat != 3 {
		t.Errorf("beat = %d, want 3", p.beat)
	}
	if p.preview.Marker() != 200 {
		t.Errorf("preview marker = %d, want 200", p.preview.Marker())
	}
	if !p.master {
		t.Errorf("master flag not applied")
	}
}

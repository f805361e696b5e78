package ui

import (
	"image"
	"log"

	"deckwav/internal/config"
	"deckwav/internal/prolink"
	"deckwav/pkg/wave"
)

const (
	beatBarWidth  = 100
	beatBarHeight = 12
)

// playerView owns everything one deck shows: label state from status
// replies, the decoded track buffers, the cached full-track composite, and
// the scroll state. All mutation goes through the set* entry points, each
// idempotent and safe to call with stale or repeated values.
type playerView struct {
	number  int
	epoch   uint64
	trackID uint32

	model                string
	address              string
	title, artist, album string
	bpm, pitch           float64
	master               bool
	progress             float64

	beat    int
	beatBar *image.RGBA

	samples   []wave.Sample
	markers   []wave.BeatMarker
	composite *image.RGBA
	summary   wave.Summary

	view    wave.View
	clock   *wave.ScrollClock
	preview wave.PreviewStrip
}

func newPlayerView(number int, cfg config.Config) *playerView {
	p := &playerView{
		number: number,
		pitch:  1.0,
		clock:  wave.NewScrollClock(cfg.ScrollRate),
		view:   wave.NewView(),
	}
	p.view.SetVisibleSamples(cfg.VisibleSeconds * wave.SampleRate)
	p.view.SetMarkerRelative(cfg.MarkerPosition)
	p.beatBar = wave.RenderBeatBar(0, beatBarWidth, beatBarHeight)
	return p
}

// loading reports whether a track is known but its detail waveform has not
// arrived yet.
func (p *playerView) loading() bool {
	return p.trackID != 0 && p.samples == nil
}

// startTrack begins a new track: the epoch advances so in-flight replies
// for the previous track become droppable, and all track-scoped state
// clears. Returns the new epoch for tagging the fetch requests.
func (p *playerView) startTrack(trackID uint32) uint64 {
	p.epoch++
	p.trackID = trackID
	p.title, p.artist, p.album = "", "", ""
	p.samples = nil
	p.markers = nil
	p.composite = nil
	p.summary = wave.Summary{}
	p.preview.SetData(nil)
	p.view.ScrollOffset = 0
	p.clock.Reset()
	return p.epoch
}

// applyStatus folds a live status push into the labels and indicators.
func (p *playerView) applyStatus(r prolink.StatusReply) {
	p.model = r.Model
	p.address = r.Address
	p.bpm = r.BPM
	p.pitch = r.Pitch
	p.master = r.Master
	p.setBeat(r.Beat)
	p.setProgress(r.Progress)
}

func (p *playerView) setMetadata(title, artist, album []byte) {
	p.title = p.decodeLabel("title", title)
	p.artist = p.decodeLabel("artist", artist)
	p.album = p.decodeLabel("album", album)
}

func (p *playerView) decodeLabel(field string, raw []byte) string {
	s, err := prolink.DecodeDeviceString(raw)
	if err != nil {
		log.Printf("player %d: bad %s field: %v", p.number, field, err)
		return ""
	}
	return s
}

// setWaveformData installs a freshly fetched detail buffer and rebuilds the
// composite. The scroll restarts from the left edge.
func (p *playerView) setWaveformData(data []byte) {
	p.samples = wave.DecodeWaveform(data)
	p.summary = wave.Summarize(p.samples)
	p.view.ScrollOffset = 0
	p.clock.Reset()
	p.recomposite()
}

// setBeatgridData parses a beat-grid buffer. A malformed grid is logged and
// recorded as "no beat grid"; rendering continues without the overlay.
func (p *playerView) setBeatgridData(data []byte) {
	markers, err := prolink.ParseBeatgrid(data)
	if err != nil {
		log.Printf("player %d: failed to parse beatgrid: %v", p.number, err)
		markers = nil
	}
	p.markers = markers
	if p.samples != nil {
		p.recomposite()
	}
}

func (p *playerView) setPreviewData(data []byte) {
	p.preview.SetData(wave.DecodePreview(data))
}

func (p *playerView) setProgress(rel float64) {
	p.progress = rel
	p.preview.SetProgress(rel)
}

// setBeat updates the phrase indicator, re-rendering only when the beat
// actually changed.
func (p *playerView) setBeat(beat int) {
	if beat == p.beat && p.beatBar != nil {
		return
	}
	p.beat = beat
	p.beatBar = wave.RenderBeatBar(beat, beatBarWidth, beatBarHeight)
}

// recomposite rebuilds the full-track image. Runs on data changes only,
// never on scroll.
func (p *playerView) recomposite() {
	p.composite = wave.Composite(p.samples, p.markers, p.view.MarkerOffset())
}

// advanceScroll moves the window forward by however much the scroll clock
// says has elapsed since the previous tick.
func (p *playerView) advanceScroll() {
	p.view.Advance(p.clock.Advance())
}

// waveFrame renders the current viewport at the given output size, or nil
// while no detail data is present.
func (p *playerView) waveFrame(w, h int) *image.RGBA {
	return wave.Frame(p.composite, p.view, w, h)
}

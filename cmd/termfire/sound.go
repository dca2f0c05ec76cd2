package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/triangles/ecs"
)

const sampleRate = beep.SampleRate(44100)

// SoundBoard turns world events into short tones. At most one tone per
// event kind is queued each frame.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundBoard() *SoundBoard {
	return &SoundBoard{mixer: &beep.Mixer{}}
}

func (sb *SoundBoard) Initialize() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sb.mixer)
	sb.initialized = true
	return nil
}

func (sb *SoundBoard) Cleanup() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Lock()
	sb.mixer.Clear()
	speaker.Unlock()
	sb.initialized = false
}

// Play queues tones for the frame's events.
func (sb *SoundBoard) Play(events []ecs.Event) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized || len(events) == 0 {
		return
	}

	var fired, lost, cleared bool
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventProjectileFired:
			fired = true
		case ecs.EventSeekerEvicted, ecs.EventSeekerRemoved:
			lost = true
		case ecs.EventWorldCleared:
			cleared = true
		}
	}

	speaker.Lock()
	defer speaker.Unlock()
	if fired {
		sb.mixer.Add(beep.Take(sampleRate.N(40*time.Millisecond), NewTone(sampleRate, 880, 0)))
	}
	if lost {
		sb.mixer.Add(beep.Take(sampleRate.N(120*time.Millisecond), NewTone(sampleRate, 140, 0)))
	}
	if cleared {
		sb.mixer.Add(beep.Take(sampleRate.N(300*time.Millisecond), NewTone(sampleRate, 660, -1200)))
	}
}

// Tone is a sine with a short attack and an optional linear pitch sweep in
// Hz per second.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	sweep float64
	phase float64
	pos   int
}

func NewTone(sr beep.SampleRate, freq, sweep float64) *Tone {
	return &Tone{sr: sr, freq: freq, sweep: sweep}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		secs := float64(t.pos) / float64(t.sr)
		freq := math.Max(t.freq+t.sweep*secs, 20)
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		envelope := math.Min(secs/0.005, 1.0)
		sample := 0.15 * envelope * math.Sin(t.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

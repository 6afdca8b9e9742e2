// Package audio plays the CHIP-8 beep each time ST goes from zero to
// non-zero: decode assets/beep.mp3 once, then re-play it on every audio
// event delivered over a channel.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Player owns the decoded beep sample and the channel that triggers it.
type Player struct {
	events   chan struct{}
	streamer beep.StreamSeekCloser
	format   beep.Format
}

// NewPlayer decodes assetPath (an mp3) and initializes the speaker. A
// missing or undecodable asset fails the run command loudly rather than
// emulating a CHIP-8 program with no sound.
func NewPlayer(assetPath string) (*Player, error) {
	f, err := os.Open(assetPath)
	if err != nil {
		return nil, fmt.Errorf("opening audio asset: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding audio asset: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	return &Player{
		events:   make(chan struct{}, 1),
		streamer: streamer,
		format:   format,
	}, nil
}

// Run blocks, playing the beep once per event received, until the channel
// is closed. Intended to run in its own goroutine.
func (p *Player) Run() {
	defer p.streamer.Close()
	for range p.events {
		speaker.Play(p.streamer)
	}
}

// Trigger requests a beep, non-blocking: a trigger already queued is enough,
// so a flood of ST-nonzero ticks within one playback never backs up.
func (p *Player) Trigger() {
	select {
	case p.events <- struct{}{}:
	default:
	}
}

// Close stops accepting triggers and lets Run return.
func (p *Player) Close() {
	close(p.events)
}

// WatchSoundTimer polls read, the CPU's sound-timer reader, at the CHIP-8
// timer rate and triggers a beep on every rising edge (0 -> nonzero).
func WatchSoundTimer(read func() byte, done <-chan struct{}, p *Player) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	var wasZero = true
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			st := read()
			if st > 0 && wasZero {
				p.Trigger()
			}
			wasZero = st == 0
		}
	}
}

// Package audio plays short synthesized cues for game events
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio. A failed Initialize leaves the
// manager muted; cue calls on a muted manager are no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// tone queues a fixed-length sine burst into the mixer
func (sm *SoundManager) tone(freq float64, dur time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(dur), sine))
	speaker.Unlock()
}

// PlayHit plays the common hit blip
func (sm *SoundManager) PlayHit() {
	sm.tone(880, 60*time.Millisecond)
}

// PlayBonus plays the brighter bonus chime
func (sm *SoundManager) PlayBonus() {
	sm.tone(1320, 90*time.Millisecond)
}

// PlayHazard plays the low hazard buzz
func (sm *SoundManager) PlayHazard() {
	sm.tone(160, 180*time.Millisecond)
}

// PlayChill plays the slow-field cue
func (sm *SoundManager) PlayChill() {
	sm.tone(520, 140*time.Millisecond)
}

// PlayMiss plays a short dull tick
func (sm *SoundManager) PlayMiss() {
	sm.tone(240, 50*time.Millisecond)
}

// PlayPromotion plays the level-up fanfare tone
func (sm *SoundManager) PlayPromotion() {
	sm.tone(1760, 250*time.Millisecond)
}

// PlayDemotion plays the demotion drop tone
func (sm *SoundManager) PlayDemotion() {
	sm.tone(110, 300*time.Millisecond)
}

// PlayMatchEnd plays the match-over tone
func (sm *SoundManager) PlayMatchEnd() {
	sm.tone(440, 400*time.Millisecond)
}

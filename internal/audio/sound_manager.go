package audio

import (
	"sync"
	"time"

	"Fletch3D/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const DefaultSampleRate = beep.SampleRate(44100)

// SoundManager plays short one-shot effects through a single speaker mixer.
// Until Initialize succeeds every Play is dropped, so the range runs silently
// on machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(rate beep.SampleRate) *SoundManager {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &SoundManager{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	logger.Log.Info("Audio initialized", zap.Int("sampleRate", int(sm.rate)))
	return nil
}

// Cleanup drops all queued sounds. beep has no speaker Close, clearing the
// mixer is enough to silence it.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a one-shot streamer on the mixer
func (sm *SoundManager) Play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.rate
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Queued is the number of streamers still playing
func (sm *SoundManager) Queued() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

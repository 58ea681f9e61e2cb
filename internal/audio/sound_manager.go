package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// maxVoices caps the effects mixed at once; further events are dropped
// until earlier ones finish.
const maxVoices = 8

// SoundManager plays an effect for each game event through the speaker.
// It implements core.EventSink.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager with a master volume in [0, 1].
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.Clamp(volume, 0, 1),
		logger: logger,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Cleanup silences all effects.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to close the speaker; it stays open but silent
	sm.initialized = false
}

// HandleEvents implements core.EventSink.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, ev := range events {
		if sm.mixer.Len() >= maxVoices {
			sm.logger.Debug("audio: dropped effect", "event", ev.Kind)
			continue
		}
		if s := sm.effect(ev); s != nil {
			sm.mixer.Add(s)
		}
	}
}

func (sm *SoundManager) effect(ev core.Event) beep.Streamer {
	s := EventSound(ev, sampleRate)
	if s == nil {
		return nil
	}
	return newVolume(s, sm.volume)
}

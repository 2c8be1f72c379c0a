package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/parameter"
)

// Service maps game events to cue tones. Initialization failure is
// not fatal: a machine without an audio device plays a silent game.
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewService creates an audio service; call Initialize before use
func NewService() *Service {
	return &Service{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(parameter.AudioSampleRate),
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call
// more than once.
func (s *Service) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferLen)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers. The speaker itself has
// no close; an empty mixer is the quiet state.
func (s *Service) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Handle plays the cue for a game event; events without a cue are
// ignored. Safe to call before Initialize.
func (s *Service) Handle(ev event.Event) {
	freq, wave, ok := cueFor(ev.Type)
	if !ok {
		return
	}
	s.play(freq, wave)
}

func (s *Service) play(freq float64, wave WaveType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tone := NewOscillator(freq, parameter.AudioCueLen, wave, s.rate)
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// cueFor returns the tone for an event type. Square cues mark the
// harsh moments, sine cues the rewarding ones.
func cueFor(t event.Type) (freq float64, wave WaveType, ok bool) {
	switch t {
	case event.WeaponFired:
		return parameter.CueFreqFire, WaveSquare, true
	case event.EnemyHit:
		return parameter.CueFreqEnemyHit, WaveSine, true
	case event.EnemyKilled:
		return parameter.CueFreqEnemyKilled, WaveSine, true
	case event.PlayerHit:
		return parameter.CueFreqPlayerHit, WaveSquare, true
	case event.Pickup:
		return parameter.CueFreqPickup, WaveSine, true
	case event.WaveComplete:
		return parameter.CueFreqWaveComplete, WaveSine, true
	case event.GameOver:
		return parameter.CueFreqGameOver, WaveSquare, true
	}
	return 0, WaveSine, false
}

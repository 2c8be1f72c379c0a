package parameter

import "time"

// Audio cue tuning. Tones are generated, not sampled.
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer duration
	AudioBufferLen = time.Second / 10

	// AudioCueLen is the duration of a single cue tone
	AudioCueLen = 50 * time.Millisecond
)

// Cue frequencies in Hz
const (
	CueFreqFire         = 220.0
	CueFreqEnemyHit     = 880.0
	CueFreqEnemyKilled  = 1320.0
	CueFreqPlayerHit    = 110.0
	CueFreqPickup       = 1760.0
	CueFreqWaveComplete = 660.0
	CueFreqGameOver     = 55.0
)

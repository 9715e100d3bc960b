package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/shootbox/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is an oscillator whose frequency glides linearly from start
// to end over the duration. Used for the falling whistle of a dry
// fire and the rising blip of a pickup
type sweep struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	rate      beep.SampleRate
}

// NewSweep creates a sine oscillator with a linear frequency glide
func NewSweep(startFreq, endFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress
		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateFireSound generates a short percussive crack for a shot
func CreateFireSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, 60*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 60*time.Millisecond, time.Millisecond, 50*time.Millisecond, rate)

	thump := NewSweep(180, 60, 60*time.Millisecond, rate)
	thumpShaped := NewEnvelope(thump, 60*time.Millisecond, time.Millisecond, 40*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.5),
		newVolume(thumpShaped, 0.8),
	)
	return newVolume(mixed, 0.6)
}

// CreateDryFireSound generates a hollow click for an empty trigger pull
func CreateDryFireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(220, 40*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 40*time.Millisecond, time.Millisecond, 30*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// CreateBounceSound generates a dull thud for a grenade bounce
func CreateBounceSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(140, 70, 80*time.Millisecond, rate)
	shaped := NewEnvelope(osc, 80*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.45)
}

// CreateBlastSound generates a long rumbling boom for a detonation
func CreateBlastSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, 400*time.Millisecond, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, 400*time.Millisecond, 2*time.Millisecond, 350*time.Millisecond, rate)

	rumble := NewSweep(90, 40, 400*time.Millisecond, rate)
	rumbleShaped := NewEnvelope(rumble, 400*time.Millisecond, 2*time.Millisecond, 300*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.4),
		newVolume(rumbleShaped, 0.9),
	)
	return newVolume(mixed, 0.8)
}

// CreateHitSound generates a bright tick for a confirmed hit
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1320, 50*time.Millisecond, WaveSine, rate)
	shaped := NewEnvelope(osc, 50*time.Millisecond, time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.35)
}

// CreatePickupSound generates a rising two-tone blip for weapon pickup
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(660, 60*time.Millisecond, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, 60*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, rate)

	n2 := NewOscillator(990, 80*time.Millisecond, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, 80*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3)
}

// CreateDropSound generates a falling blip for discarding a weapon
func CreateDropSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(660, 330, 100*time.Millisecond, rate)
	shaped := NewEnvelope(osc, 100*time.Millisecond, 2*time.Millisecond, 70*time.Millisecond, rate)
	return newVolume(shaped, 0.3)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case core.SoundFire:
		return CreateFireSound(rate)
	case core.SoundDryFire:
		return CreateDryFireSound(rate)
	case core.SoundBounce:
		return CreateBounceSound(rate)
	case core.SoundBlast:
		return CreateBlastSound(rate)
	case core.SoundHit:
		return CreateHitSound(rate)
	case core.SoundPickup:
		return CreatePickupSound(rate)
	case core.SoundDrop:
		return CreateDropSound(rate)
	default:
		return nil
	}
}

package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/farmstead/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine whose frequency glides linearly from f0 to f1
func sweep(f0, f1 float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(max(samples-1, 1))
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += (f0 + (f1-f0)*t) / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := samplesFor(attack)
	releaseSamples := samplesFor(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// normalize scales the buffer so its peak is at most 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, v := range buf {
		peak = max(peak, math.Abs(v))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

func generatePickupSound() floatBuffer {
	buf := sweep(440, 660, samplesFor(parameter.PickupSoundDuration))
	applyEnvelope(buf, parameter.PickupSoundAttack, parameter.PickupSoundRelease)
	return buf
}

func generateSnapSound() floatBuffer {
	n := samplesFor(parameter.SnapSoundDuration)
	body := oscillator(waveSine, 220, n)
	click := oscillator(waveNoise, 0, n/6)
	buf := mixFloatBuffers(body, click, 0.4)
	applyEnvelope(buf, parameter.SnapSoundAttack, parameter.SnapSoundRelease)
	return normalize(buf)
}

func generateLockSound() floatBuffer {
	n := samplesFor(parameter.LockSoundDuration)

	// Fundamental E5
	fund := oscillator(waveSine, 659.25, n)
	applyEnvelope(fund, parameter.LockSoundAttack, parameter.LockSoundFundamentalRelease)

	// Overtone E6
	over := oscillator(waveSine, 1318.51, n)
	applyEnvelope(over, parameter.LockSoundAttack, parameter.LockSoundOvertoneRelease)

	return normalize(mixFloatBuffers(fund, over, 0.3/0.7))
}

func generateSpawnSound() floatBuffer {
	buf := oscillator(waveNoise, 0, samplesFor(parameter.SpawnSoundDuration))
	applyEnvelope(buf, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease)
	return buf
}

func generateCompleteSound() floatBuffer {
	// C5 E5 G5
	var buf floatBuffer
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		note := oscillator(waveSquare, freq, samplesFor(parameter.CompleteNoteDuration))
		applyEnvelope(note, parameter.CompleteNoteAttack, parameter.CompleteNoteRelease)
		buf = concatFloatBuffers(buf, note)
	}
	return buf
}

func generateRejectSound() floatBuffer {
	buf := oscillator(waveSaw, 100.0, samplesFor(parameter.RejectSoundDuration))
	applyEnvelope(buf, parameter.RejectSoundAttack, parameter.RejectSoundRelease)
	return buf
}

// generateSound dispatches to specific generator
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundPickup:
		return generatePickupSound()
	case SoundSnap:
		return generateSnapSound()
	case SoundLock:
		return generateLockSound()
	case SoundSpawn:
		return generateSpawnSound()
	case SoundComplete:
		return generateCompleteSound()
	case SoundReject:
		return generateRejectSound()
	default:
		return nil
	}
}

package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; shorter is snappier but risks underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Pickup: short rising blip
const (
	PickupSoundDuration = 60 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 30 * time.Millisecond
)

// Snap: wooden knock
const (
	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 2 * time.Millisecond
	SnapSoundRelease  = 70 * time.Millisecond
)

// Lock: bell with overtone
const (
	LockSoundDuration           = 500 * time.Millisecond
	LockSoundAttack             = 5 * time.Millisecond
	LockSoundFundamentalRelease = 450 * time.Millisecond
	LockSoundOvertoneRelease    = 180 * time.Millisecond
)

// Spawn: soft noise puff
const (
	SpawnSoundDuration = 200 * time.Millisecond
	SpawnSoundAttack   = 80 * time.Millisecond
	SpawnSoundRelease  = 100 * time.Millisecond
)

// Complete: three-note arpeggio
const (
	CompleteNoteDuration = 140 * time.Millisecond
	CompleteNoteAttack   = 5 * time.Millisecond
	CompleteNoteRelease  = 60 * time.Millisecond
)

// Reject: low saw buzz
const (
	RejectSoundDuration = 80 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 20 * time.Millisecond
)

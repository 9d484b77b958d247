package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundPickup   SoundType = iota // Drag started
	SoundSnap                      // Entity committed into a zone
	SoundLock                      // Sequence finished, entity locked
	SoundSpawn                     // Clone appeared
	SoundComplete                  // Puzzle solved
	SoundReject                    // Sequence cancelled
	soundTypeCount
)

var soundNames = [...]string{
	SoundPickup:   "pickup",
	SoundSnap:     "snap",
	SoundLock:     "lock",
	SoundSpawn:    "spawn",
	SoundComplete: "complete",
	SoundReject:   "reject",
}

func (st SoundType) String() string {
	if st >= 0 && int(st) < len(soundNames) {
		return soundNames[st]
	}
	return "unknown"
}

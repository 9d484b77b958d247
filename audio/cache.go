package audio

// soundCache holds one unity-gain buffer per sound type
// Buffers are synthesized at construction and never written again, so reads need no lock
type soundCache struct {
	buffers [soundTypeCount]floatBuffer
}

func newSoundCache() *soundCache {
	c := &soundCache{}
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.buffers[st] = generateSound(st)
	}
	return c
}

// get returns the buffer for st, nil for unknown types
func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	return c.buffers[st]
}

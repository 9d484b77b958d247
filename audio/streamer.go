package audio

// bufferStreamer plays a mono float buffer once as a stereo beep.Streamer
type bufferStreamer struct {
	buf    floatBuffer
	pos    int
	volume float64
}

func newBufferStreamer(buf floatBuffer, volume float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, volume: volume}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos] * s.volume
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

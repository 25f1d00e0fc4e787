package material

import (
	"time"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// Sequence is an animated material that cycles through texture frames at
// a fixed rate. Update advances the current frame from wall time; ColorAt
// samples whatever frame was current at the last Update.
type Sequence struct {
	frames    []*Texture
	fps       float32
	frameTime time.Duration
	start     time.Time
	current   int
}

// NewSequence creates an animated material from texture frames.
func NewSequence(frames []*Texture, fps float32) *Sequence {
	s := &Sequence{
		frames: frames,
		start:  time.Now(),
	}
	s.SetFPS(fps)
	return s
}

// SetFPS sets the playback rate.
func (s *Sequence) SetFPS(fps float32) {
	if fps <= 0 {
		fps = 24
	}
	s.fps = fps
	s.frameTime = time.Duration(float64(time.Second) / float64(fps))
}

// FrameCount returns the number of frames in the sequence.
func (s *Sequence) FrameCount() int {
	return len(s.frames)
}

// CurrentFrame returns the index of the frame selected by the last Update.
func (s *Sequence) CurrentFrame() int {
	return s.current
}

// Reset restarts the sequence from its first frame.
func (s *Sequence) Reset() {
	s.start = time.Now()
	s.current = 0
}

// Update selects the frame for the given time. Call once per rendered frame.
func (s *Sequence) Update(now time.Time) {
	if len(s.frames) == 0 {
		return
	}
	elapsed := now.Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	s.current = int(elapsed/s.frameTime) % len(s.frames)
}

// ColorAt implements Material by sampling the current frame.
func (s *Sequence) ColorAt(uv math3d.Vec2) RGB {
	if len(s.frames) == 0 {
		return RGB{}
	}
	return s.frames[s.current].ColorAt(uv)
}

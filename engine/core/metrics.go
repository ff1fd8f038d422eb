package core

import "github.com/spaghettifunk/anima-ffp/engine/containers"

const AVG_COUNT = 30

// Metrics keeps a rolling average of the frame time, the frames per second
// and the totals reported by the renderer for the last frame.
type Metrics struct {
	frameTimes         *containers.RingQueue[float64]
	msAvg              float64
	frames             int
	accumulatedFrameMS float64
	fps                float64

	DrawCalls     int
	Vertices      int
	Primitives    int
	SkippedStates int
}

func NewMetrics() *Metrics {
	return &Metrics{
		frameTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

// Update records the duration of a frame in seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	m.frameTimes.Push(frameMS)

	sum := 0.0
	m.frameTimes.Each(func(ms float64) {
		sum += ms
	})
	m.msAvg = sum / float64(m.frameTimes.Len())

	// Calculate frames per second.
	m.accumulatedFrameMS += frameMS
	m.frames++
	if m.accumulatedFrameMS >= 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}
}

// RecordRender stores the renderer totals of the last frame.
func (m *Metrics) RecordRender(drawCalls, vertices, primitives, skippedStates int) {
	m.DrawCalls = drawCalls
	m.Vertices = vertices
	m.Primitives = primitives
	m.SkippedStates = skippedStates
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}

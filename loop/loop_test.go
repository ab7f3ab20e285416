package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	frames  int // ProcessEvents returns true after that many frames
	events  int
	updates []time.Duration
	draws   [][2]time.Duration
	starts  int
	cancel  func()
}

func (a *app) ProcessEvents() bool {
	a.events++
	if a.cancel != nil && a.events == 2 {
		a.cancel()
	}
	return a.events > a.frames
}

func (a *app) Update(dt time.Duration) { a.updates = append(a.updates, dt) }
func (a *app) FrameStart(time.Time)    { a.starts++ }

func (a *app) Draw(ft, partial time.Duration) {
	a.draws = append(a.draws, [2]time.Duration{ft, partial})
}

func TestFixedStepFrame(t *testing.T) {
	l := FixedStep{DT: 10 * time.Millisecond, MaxFT: 100 * time.Millisecond}
	a := new(app)

	l.frame(a, 25*time.Millisecond)
	assert.Len(t, a.updates, 2)
	assert.Equal(t, [2]time.Duration{25 * time.Millisecond, 5 * time.Millisecond}, a.draws[0])

	l.frame(a, 5*time.Millisecond)
	assert.Len(t, a.updates, 3)
	assert.Equal(t, [2]time.Duration{5 * time.Millisecond, 0}, a.draws[1])

	// frame time is clamped to MaxFT
	l.frame(a, 2*time.Second)
	assert.Len(t, a.updates, 13)
	assert.Equal(t, [2]time.Duration{100 * time.Millisecond, 0}, a.draws[2])
	for _, dt := range a.updates {
		assert.Equal(t, 10*time.Millisecond, dt)
	}
}

func TestFixedStepRun(t *testing.T) {
	var l FixedStep
	a := &app{frames: 3}
	require.NoError(t, l.Run(context.Background(), a))
	assert.Len(t, a.draws, 3)
	assert.Equal(t, 3, a.starts)
	assert.Equal(t, DefaultDT, l.DT)
	assert.Equal(t, DefaultMaxFT, l.MaxFT)
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var l FixedStep
	a := &app{frames: 100, cancel: cancel}
	assert.ErrorIs(t, l.Run(ctx, a), context.Canceled)
	assert.Len(t, a.draws, 1)
}

type simple struct {
	app
	n int
}

func (s *simple) Update() { s.n++ }
func (s *simple) Draw()   {}

func TestSimpleRun(t *testing.T) {
	var l Simple
	l.MinFrameTime(time.Millisecond)
	s := &simple{app: app{frames: 3}}
	require.NoError(t, l.Run(context.Background(), s))
	assert.Equal(t, 3, s.n)
	assert.Equal(t, 3, s.starts)
	assert.Nil(t, l.ticker)
}

// The loop package provides simple event loops, one of them with a fixed
// update timestep.
package loop

import (
	"context"
	"time"
)

// EventProcessor wraps the ProcessEvents method.
//
// It is up to the implementation to either poll events or wait for events.
// Applications using a wait-for-event model should however only use the Simple
// event loop.
//
// Graphical applications that need to swap buffers should swap their buffers in
// their ProcessEvents method, before actually processing events.
type EventProcessor interface {
	ProcessEvents() (quit bool)
}

type FixedStepUpdater interface {
	EventProcessor
	Update(timestep time.Duration)
	Draw(frameTime, partialTimestep time.Duration)
}

// FrameStarter is the interface implemented by any App that wants the time
// stamp at the beginning of each loop iteration.
type FrameStarter interface {
	FrameStart(time.Time)
}

type SimpleUpdater interface {
	EventProcessor
	Update()
	Draw()
}

// Simple provides a very simple event loop suited for applications that use a
// wait-for-event model.
type Simple struct {
	ticker *time.Ticker
	minFT  time.Duration
}

// MinFrameTime sets the minimum frame time.
//
// If the t value is greater than 0, the frame rate will be clamped
// to time.Second/t.
func (l *Simple) MinFrameTime(t time.Duration) {
	if t == l.minFT {
		return
	}
	l.stopTicker()
	l.minFT = t
	if l.minFT > 0 {
		l.ticker = time.NewTicker(l.minFT)
	}
}

func (l *Simple) now() time.Time {
	if l.ticker != nil {
		return <-l.ticker.C
	}
	return time.Now()
}

func (l *Simple) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// Run runs the loop until a.ProcessEvents returns true or ctx is done. It
// returns ctx.Err() in the latter case.
func (l *Simple) Run(ctx context.Context, a SimpleUpdater) error {
	defer l.stopTicker()
	fStart, _ := a.(FrameStarter)
	for !a.ProcessEvents() {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := l.now()
		if fStart != nil {
			fStart.FrameStart(now)
		}
		a.Update()
		a.Draw()
	}
	return nil
}

type FixedStep struct {
	Simple
	MaxFT time.Duration // maximum frame time
	DT    time.Duration // timestep

	acc time.Duration
}

// Default timings for FixedStep.Run
const (
	DefaultDT    time.Duration = time.Second / 240
	DefaultMaxFT time.Duration = time.Second
)

// Run runs the loop until a.ProcessEvents returns true or ctx is done. It
// returns ctx.Err() in the latter case.
//
// Every frame, Update is called as many times as there are whole timesteps in
// the time accumulated since the previous frame. Draw then gets the frame time
// and what remains of the accumulator.
func (l *FixedStep) Run(ctx context.Context, a FixedStepUpdater) error {
	defer l.stopTicker()
	var (
		tPrev  = time.Now()
		fStart FrameStarter
	)

	fStart, _ = a.(FrameStarter)

	if l.DT == 0 {
		l.DT = DefaultDT
	}
	if l.MaxFT == 0 {
		l.MaxFT = DefaultMaxFT
	}

	for !a.ProcessEvents() {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := l.now()
		ft := now.Sub(tPrev)
		tPrev = now
		if fStart != nil {
			fStart.FrameStart(now)
		}
		l.frame(a, ft)
	}
	return nil
}

func (l *FixedStep) frame(a FixedStepUpdater, ft time.Duration) {
	if ft > l.MaxFT {
		ft = l.MaxFT
	}
	l.acc += ft
	for ; l.acc >= l.DT; l.acc -= l.DT {
		a.Update(l.DT)
	}
	a.Draw(ft, l.acc)
}

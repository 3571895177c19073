package mcts

import (
	"context"
	"testing"
)

func TestLimiterCycles(t *testing.T) {
	limiter := LimiterLike(NewLimiter())

	if limiter.Limits().Cycles != DefaultCyclesLimit {
		t.Errorf("Default cycles %d, want %d", limiter.Limits().Cycles, DefaultCyclesLimit)
	}

	limiter.SetLimits(DefaultLimits().SetCycles(30))
	limiter.Reset()
	if ok := limiter.Ok(29); !ok {
		t.Errorf("<Cycles=%d: ok=%v, want=%v", 29, ok, !ok)
	}
	if ok := limiter.Ok(30); ok {
		t.Errorf(">=Cycles=%d: ok=%v, want=%v", 30, ok, !ok)
	}

	limiter.EvaluateStopReason(30)
	if limiter.StopReason() != StopCycles {
		t.Errorf("Stop reason %s, want Cycles", limiter.StopReason())
	}

	limiter.SetLimits(nil)
	if limiter.Limits() == nil || limiter.Limits().Cycles != DefaultCyclesLimit {
		t.Error("nil limits should fall back to the defaults")
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.SetStop(true)
	if limiter.Ok(0) {
		t.Error("Stopped limiter should not be ok")
	}

	limiter.Reset()
	if !limiter.Ok(0) {
		t.Error("Reset should clear the stop signal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	cancel()
	if limiter.Ok(0) || !limiter.Stop() {
		t.Error("Cancelled context should stop the limiter")
	}

	limiter.EvaluateStopReason(0)
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("Stop reason %s, want Interrupt", limiter.StopReason())
	}
	if s := StopReason(StopInterrupt | StopCycles).String(); s != "Interrupt|Cycles" {
		t.Errorf("Combined stop reason %q", s)
	}
}

func TestLimitsSetters(t *testing.T) {
	limits := DefaultLimits().SetCycles(5).SetThreads(-3).SetRolloutPlies(0)
	if limits.Cycles != 5 || limits.NThreads != 1 || limits.RolloutPlies != 1 {
		t.Errorf("Unexpected limits %s", limits)
	}
	if limits.SetCycles(0).Cycles != 1 {
		t.Errorf("Cycles should be at least 1, got %d", limits.Cycles)
	}
}

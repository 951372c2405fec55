package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestTickSchedulerCadence(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewTickScheduler(mock, 70*time.Millisecond)

	if s.Due() {
		t.Error("Expected no tick at start")
	}
	if got := s.Timeout(); got != 70*time.Millisecond {
		t.Errorf("Expected timeout 70ms, got %v", got)
	}

	mock.Advance(30 * time.Millisecond)
	if got := s.Timeout(); got != 40*time.Millisecond {
		t.Errorf("Expected timeout 40ms, got %v", got)
	}
	if s.Due() {
		t.Error("Expected no tick before boundary")
	}

	mock.Advance(40 * time.Millisecond)
	if !s.Due() {
		t.Error("Expected tick at boundary")
	}
	if s.Due() {
		t.Error("Expected a single tick per boundary")
	}
	if got := s.Timeout(); got != 70*time.Millisecond {
		t.Errorf("Expected next timeout 70ms, got %v", got)
	}
}

func TestTickSchedulerNoBurstAfterStall(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewTickScheduler(mock, 10*time.Millisecond)

	mock.Advance(time.Second)
	if !s.Due() {
		t.Fatal("Expected tick after stall")
	}
	if s.Due() {
		t.Error("Expected stalled ticks to be dropped, not replayed")
	}
	if got := s.Timeout(); got != 10*time.Millisecond {
		t.Errorf("Expected re-anchored timeout 10ms, got %v", got)
	}
}

func TestTickSchedulerSetInterval(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewTickScheduler(mock, 70*time.Millisecond)
	mock.Advance(50 * time.Millisecond)

	s.SetInterval(100 * time.Millisecond)
	if s.Interval() != 100*time.Millisecond {
		t.Errorf("Expected interval 100ms, got %v", s.Interval())
	}
	if got := s.Timeout(); got != 100*time.Millisecond {
		t.Errorf("Expected timeout reset to 100ms, got %v", got)
	}

	s.SetInterval(0)
	if s.Interval() != 100*time.Millisecond {
		t.Error("Expected non-positive interval to be ignored")
	}
}

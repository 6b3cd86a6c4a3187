package clock

import (
	"testing"
	"time"
)

// TestMonotonicTimeProvider tests that real time moves forward between reads
func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()

	first := p.Now()
	second := p.Now()
	if second.Before(first) {
		t.Errorf("expected monotonic readings, got %v then %v", first, second)
	}
}

// TestMockTimeProviderHoldsStill tests that mocked time only moves when
// advanced
func TestMockTimeProviderHoldsStill(t *testing.T) {
	epoch := time.Unix(1000, 0)
	m := NewMockTimeProvider(epoch)

	if !m.Now().Equal(epoch) {
		t.Errorf("expected mock pinned at epoch, got %v", m.Now())
	}
	if !m.Now().Equal(m.Now()) {
		t.Error("expected repeated reads to be identical")
	}
}

// TestMockTimeProviderAdvanceAccumulates tests that advances add up
func TestMockTimeProviderAdvanceAccumulates(t *testing.T) {
	epoch := time.Unix(0, 0)
	m := NewMockTimeProvider(epoch)

	m.Advance(250 * time.Millisecond)
	m.Advance(750 * time.Millisecond)

	want := epoch.Add(time.Second)
	if !m.Now().Equal(want) {
		t.Errorf("expected %v after advances, got %v", want, m.Now())
	}
}

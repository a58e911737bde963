package lesson

import (
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(ft.now)

	if ms := c.Millis(); ms != 0 {
		t.Fatalf("new clock at %d ms, want 0", ms)
	}
	ft.advance(1500*time.Millisecond + 700*time.Microsecond)
	if ms := c.Millis(); ms != 1500 {
		t.Errorf("Millis = %d, want 1500", ms)
	}

	c.Toggle()
	if !c.Paused() {
		t.Fatal("clock not paused after Toggle")
	}
	ft.advance(3 * time.Second)
	if ms := c.Millis(); ms != 1500 {
		t.Errorf("paused Millis = %d, want 1500", ms)
	}

	c.Toggle()
	if c.Paused() {
		t.Fatal("clock still paused after second Toggle")
	}
	ft.advance(500 * time.Millisecond)
	if ms := c.Millis(); ms != 2000 {
		t.Errorf("resumed Millis = %d, want 2000", ms)
	}
}

func TestClockBackwards(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(ft.now)
	ft.advance(-time.Second)
	if ms := c.Millis(); ms != 0 {
		t.Errorf("Millis = %d before start, want 0", ms)
	}
}

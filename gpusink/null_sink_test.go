package gpusink

import "testing"

func TestNullSinkRecordsSubmittedVertices(t *testing.T) {
	var s NullSink
	s.Begin(0)
	s.Vertex2f(1, 2)
	s.Vertex2f(3, 4)
	s.End()
	if len(s.Submitted) != 2 {
		t.Fatalf("expected 2 submitted vertices, got %d", len(s.Submitted))
	}
}

func TestNullSinkAllocatesDistinctTextureHandles(t *testing.T) {
	var s NullSink
	a := s.LoadTexture(nil, 4, 4, 0)
	b := s.LoadTexture(nil, 4, 4, 0)
	if a.ID == b.ID {
		t.Fatal("expected distinct texture handle IDs")
	}
}

func TestNullSinkDrawIncrementsCallCount(t *testing.T) {
	var s NullSink
	s.Draw()
	s.Draw()
	if s.DrawCalls != 2 {
		t.Fatalf("expected 2 draw calls, got %d", s.DrawCalls)
	}
}

func TestNullSinkCheckBufferLimitAlwaysHasRoom(t *testing.T) {
	var s NullSink
	if !s.CheckBufferLimit(1 << 20) {
		t.Fatal("expected NullSink to always report buffer room")
	}
}

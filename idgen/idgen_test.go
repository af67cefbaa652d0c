package idgen

import "testing"

func TestCounterNextUnique(t *testing.T) {
	c := NewCounter("h")
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := c.Next()
		if id == "" {
			t.Error("Next should not return empty string")
		}
		if seen[id] {
			t.Errorf("id %q was produced twice", id)
		}
		seen[id] = true
	}
}

func TestCounterPrefix(t *testing.T) {
	c := NewCounter("h")
	id := c.Next()
	if id != "h1" {
		t.Errorf("first id = %q, want %q", id, "h1")
	}
	id = c.Next()
	if id != "h2" {
		t.Errorf("second id = %q, want %q", id, "h2")
	}
}

func TestCounterEmptyPrefix(t *testing.T) {
	c := NewCounter("")
	id := c.Next()
	if id != "1" {
		t.Errorf("id = %q, want %q", id, "1")
	}
}

func TestCounterImplementsSource(t *testing.T) {
	var _ Source = NewCounter("x")
}

package server

import (
	"testing"
	"time"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	rl := NewRateLimiter(3, 50*time.Millisecond)

	for i := range 3 {
		if !rl.Allow("a") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("a") {
		t.Fatal("fourth request should be limited")
	}
	if !rl.Allow("b") {
		t.Fatal("other keys have their own window")
	}

	time.Sleep(80 * time.Millisecond)
	if !rl.Allow("a") {
		t.Fatal("a new window should open after expiry")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	for range 100 {
		if !rl.Allow("a") {
			t.Fatal("a zero limit should never reject")
		}
	}
}

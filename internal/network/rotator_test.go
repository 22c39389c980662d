package network

import (
	"errors"
	"testing"
	"time"
)

func TestRotatorRoundRobin(t *testing.T) {
	r, err := NewRotator([]string{"http://a:1", " ", "http://b:2"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	var got []string
	for i := 0; i < 3; i++ {
		proxy, err := r.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, proxy.Host)
	}
	if got[0] != "a:1" || got[1] != "b:2" || got[2] != "a:1" {
		t.Fatalf("Next() order = %v", got)
	}
}

func TestRotatorBansOnBlockedStatus(t *testing.T) {
	r, err := NewRotator([]string{"http://a:1", "http://b:2"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	a, _ := r.Next()
	r.Report(a, 429)
	b, _ := r.Next()
	r.Report(b, 200)

	proxy, err := r.Next()
	if err != nil || proxy.Host != "b:2" {
		t.Fatalf("Next() = %v, %v; want b:2", proxy, err)
	}

	r.Report(b, 403)
	if _, err := r.Next(); !errors.Is(err, ErrNoProxies) {
		t.Fatalf("Next() error = %v, want ErrNoProxies", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() after ban expiry error = %v", err)
	}
}

func TestNewRotatorRejectsBadProxy(t *testing.T) {
	if _, err := NewRotator([]string{"not a proxy"}, time.Minute); err == nil {
		t.Fatalf("NewRotator() error = nil, want error")
	}
	r, err := NewRotator(nil, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator(nil) error = %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, ErrNoProxies) {
		t.Fatalf("Next() error = %v, want ErrNoProxies", err)
	}
}

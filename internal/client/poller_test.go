package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
)

func TestPoller_DeliversSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"drivers":[{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","name":"Alice","email":"alice@campus.edu","location":null}]}`))
	}))
	defer srv.Close()

	updates := make(chan []models.DriverWithLocation, 10)
	p := NewPoller(New(srv.URL), 10*time.Millisecond, func(drivers []models.DriverWithLocation) {
		updates <- drivers
	}, nil)

	p.Start(context.Background())
	defer p.Stop()

	select {
	case drivers := <-updates:
		if len(drivers) != 1 || drivers[0].Name != "Alice" {
			t.Errorf("unexpected snapshot: %+v", drivers)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestPoller_SurvivesServerFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail the first two polls, then recover.
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"drivers":[]}`))
	}))
	defer srv.Close()

	updates := make(chan struct{}, 1)
	errs := make(chan error, 10)
	p := NewPoller(New(srv.URL), 10*time.Millisecond, func([]models.DriverWithLocation) {
		select {
		case updates <- struct{}{}:
		default:
		}
	}, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})

	p.Start(context.Background())
	defer p.Stop()

	select {
	case <-errs:
	case <-time.After(time.Second):
		t.Fatal("expected an error from the failing polls")
	}

	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("poller did not keep ticking after failures")
	}
}

func TestPoller_StopDiscardsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"drivers":[]}`))
	}))
	defer srv.Close()
	defer close(release)

	var delivered atomic.Int32
	p := NewPoller(New(srv.URL), 10*time.Millisecond, func([]models.DriverWithLocation) {
		delivered.Add(1)
	}, nil)

	p.Start(context.Background())

	// Wait until a fetch is blocked inside the server, then stop.
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("fetch never started")
	}
	p.Stop()

	if got := delivered.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
	if p.State() != Idle {
		t.Errorf("state after Stop = %v, want idle", p.State())
	}
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"driver":{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","name":"Bob","email":"bob@campus.edu","location":{"driver_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","lat":17.44,"lng":78.35,"updated_at":"2025-03-10T12:00:00Z"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("secret-token"))
	driver, err := c.DriverLocation(context.Background(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if driver.Name != "Bob" || driver.Location == nil {
		t.Errorf("unexpected driver: %+v", driver)
	}
	if driver.Location.Latitude != 17.44 {
		t.Errorf("latitude = %v, want 17.44", driver.Location.Latitude)
	}
}

func TestClient_SurfacesAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"driver location not available"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).DriverLocation(context.Background(), "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "driver location not available") {
		t.Errorf("error %q does not carry the server message", err)
	}
}

func TestClient_EmptyDriverList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"drivers":[]}`))
	}))
	defer srv.Close()

	drivers, err := New(srv.URL).Drivers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(drivers) != 0 {
		t.Errorf("got %d drivers, want 0", len(drivers))
	}
}

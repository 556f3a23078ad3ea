package chargers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeSource struct {
	pois  []POI
	err   error
	calls int
	query GeoQuery
}

func (f *fakeSource) Nearby(_ context.Context, q GeoQuery) ([]POI, error) {
	f.calls++
	f.query = q
	return f.pois, f.err
}

func TestLookup_UsesDefaultQuery(t *testing.T) {
	src := &fakeSource{}
	NewLookup(src).FindChargers(context.Background())

	if src.calls != 1 {
		t.Fatalf("expected 1 call, got %d", src.calls)
	}
	if src.query != DefaultQuery {
		t.Errorf("expected DefaultQuery, got %+v", src.query)
	}
}

func TestLookup_NoChargers(t *testing.T) {
	got := NewLookup(&fakeSource{pois: []POI{}}).FindChargers(context.Background())
	if got != NoChargersReply {
		t.Errorf("expected %q, got %q", NoChargersReply, got)
	}
}

func TestLookup_ErrorBecomesReply(t *testing.T) {
	src := &fakeSource{err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused")}
	got := NewLookup(src).FindChargers(context.Background())

	want := "Error fetching chargers: dial tcp 127.0.0.1:1: connect: connection refused"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLookup_StatusErrorBecomesReply(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	got := NewLookup(NewClient("k", ts.URL, 0)).FindChargers(context.Background())
	if !strings.HasPrefix(got, "Error fetching chargers: 500 Internal Server Error") {
		t.Errorf("unexpected reply %q", got)
	}
}

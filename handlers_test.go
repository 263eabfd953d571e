package seamon

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qmertyy/seamon/spatial"
	"github.com/qmertyy/seamon/vessel"
)

func testStore() *vessel.Store {
	s := vessel.NewStore()
	s.Upsert(vessel.Update{
		MMSI: 123, Kind: vessel.KindPosition,
		Name: "AURORA", Lat: 10, Lng: 20, Timestamp: 1000,
		Position: &vessel.PositionGroup{Heading: 90, Speed: 12, NavStatus: 0},
	})
	s.Upsert(vessel.Update{
		MMSI: 123, Kind: vessel.KindStatic,
		Name: "AURORA", Lat: 10, Lng: 20, Timestamp: 1001,
		Static: &vessel.StaticGroup{ShipType: 70, Destination: "KIEL", IMONumber: 9999},
	})
	s.Upsert(vessel.Update{
		MMSI: 456, Kind: vessel.KindPosition,
		Name: "BOREAS", Lat: -40, Lng: 150, Timestamp: 1002,
		Position: &vessel.PositionGroup{Speed: 3},
	})
	return s
}

func doGet(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	return resp, body
}

func TestShipsInBBoxEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testStore()))
	defer srv.Close()

	resp, body := doGet(t, srv, "/api/ships/0/0/20/30")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var states []vessel.State
	if err := json.Unmarshal(body, &states); err != nil {
		t.Fatalf("bad listing payload: %v", err)
	}
	if len(states) != 1 || states[0].MMSI != 123 {
		t.Fatalf("expected only vessel 123 in the box, got %+v", states)
	}
	if states[0].Lat != 10 || states[0].Lng != 20 || states[0].ShipType != 70 {
		t.Errorf("unexpected state: %+v", states[0])
	}
}

func TestShipsInBBoxRejectsBadParams(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testStore()))
	defer srv.Close()

	tests := []struct {
		name string
		path string
	}{
		{name: "non-numeric coordinate", path: "/api/ships/a/0/20/30"},
		{name: "inverted latitude", path: "/api/ships/20/0/0/30"},
		{name: "inverted longitude", path: "/api/ships/0/30/20/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doGet(t, srv, tt.path)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", tt.path, resp.StatusCode)
			}
		})
	}
}

func TestShipInfoEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testStore()))
	defer srv.Close()

	resp, body := doGet(t, srv, "/api/ship/123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rec vessel.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		t.Fatalf("bad record payload: %v", err)
	}
	if rec.MMSI != 123 || rec.Destination != "KIEL" || rec.IMONumber != 9999 || rec.NavStatus != 0 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestShipInfoMisses(t *testing.T) {
	srv := httptest.NewServer(NewRouter(testStore()))
	defer srv.Close()

	if resp, _ := doGet(t, srv, "/api/ship/999"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id should 404, got %d", resp.StatusCode)
	}
	if resp, _ := doGet(t, srv, "/api/ship/fleet"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("non-numeric id should 400, got %d", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	store := testStore()
	srv := httptest.NewServer(NewRouter(store))
	defer srv.Close()

	// Force an index build so the point count is visible.
	store.QueryBBox(spatial.Box{SwLat: -90, SwLng: -180, NeLat: 90, NeLng: 180})

	resp, body := doGet(t, srv, "/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var h healthResponse
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatalf("bad health payload: %v", err)
	}
	if h.Status != "ok" || h.Vessels != 2 || h.IndexedPoints != 2 {
		t.Errorf("unexpected health: %+v", h)
	}
}

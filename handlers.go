package seamon

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/qmertyy/seamon/spatial"
	"github.com/qmertyy/seamon/vessel"
)

// handleShipsInBBox serves the viewport listing: every vessel with a
// known position inside the requested box, in the compact state view.
func handleShipsInBBox(store *vessel.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		box, err := parseBox(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, store.QueryBBox(box))
	}
}

// handleShipInfo serves the full record for one vessel id.
func handleShipInfo(store *vessel.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "id must be a vessel MMSI")
			return
		}
		rec, ok := store.Get(uint32(id))
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

var errBoxInverted = errors.New("bounding box corners must satisfy sw <= ne")

func parseBox(r *http.Request) (spatial.Box, error) {
	var box spatial.Box
	var err error
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"swLat", &box.SwLat},
		{"swLng", &box.SwLng},
		{"neLat", &box.NeLat},
		{"neLng", &box.NeLng},
	} {
		*p.dst, err = strconv.ParseFloat(chi.URLParam(r, p.name), 64)
		if err != nil {
			return spatial.Box{}, fmt.Errorf("%s must be a decimal coordinate", p.name)
		}
	}
	if !box.Valid() {
		return spatial.Box{}, errBoxInverted
	}
	return box, nil
}

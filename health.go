package seamon

import (
	"net/http"

	"github.com/qmertyy/seamon/vessel"
)

type healthResponse struct {
	Status        string `json:"status"`
	Vessels       int    `json:"vessels"`
	IndexedPoints int    `json:"indexed_points"`
}

func handleHealth(store *vessel.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:        "ok",
			Vessels:       store.Len(),
			IndexedPoints: store.IndexedPoints(),
		})
	}
}

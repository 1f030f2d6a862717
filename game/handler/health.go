package handler

import (
	"fmt"
	"net/http"

	"skirmish/game/domain"
)

// NewHealthHandler は 200 と接続中のピア数を返します。
func NewHealthHandler(hub domain.PeerHub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok peers=%d\n", len(hub.Roster()))
	}
}

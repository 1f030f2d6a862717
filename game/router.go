package game

import (
	"net/http"

	"skirmish/game/domain"
	"skirmish/game/handler"
)

func Route(hub domain.PeerHub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", handler.NewAcceptHandler(hub))
	mux.Handle("/health", handler.NewHealthHandler(hub))
	return mux
}

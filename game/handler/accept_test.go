package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"skirmish/game/domain"
	"skirmish/game/domain/mocks"
	"skirmish/game/handler"
)

func TestAcceptHandler_RejectsNonClientRole(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{name: "missing", role: ""},
		{name: "host", role: "host"},
		{name: "garbage", role: "spectator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			hub := mocks.NewMockPeerHub(ctrl)

			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.role != "" {
				req.Header.Set("role", tt.role)
			}
			rec := httptest.NewRecorder()
			handler.NewAcceptHandler(hub).ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockPeerHub(ctrl)
	hub.EXPECT().Roster().Return([]domain.RosterEntry{{UID: "a"}, {UID: "b"}})

	rec := httptest.NewRecorder()
	handler.NewHealthHandler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok peers=2\n" {
		t.Errorf("body = %q", got)
	}
}

package server

import (
	"net/http"
	"strconv"
	"strings"

	"dead-air/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.Home()).ServeHTTP(w, r)
}

func (s *Server) handleHostView(w http.ResponseWriter, r *http.Request) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/host/"), "/")
	gameID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := s.findGame(uint(gameID)); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.HostConsole(uint(gameID))).ServeHTTP(w, r)
}

func (s *Server) handlePlayView(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCodePath(r.URL.Path, "/play/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.PlayerView(code)).ServeHTTP(w, r)
}

func (s *Server) handleIntakeView(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCodePath(r.URL.Path, "/intake/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.IntakeForm(code)).ServeHTTP(w, r)
}

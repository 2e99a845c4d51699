package server

import (
	"net/http"

	"dead-air/internal/config"
	"dead-air/internal/mail"

	"gorm.io/gorm"
)

type Server struct {
	db   *gorm.DB
	cfg  config.Config
	mail mail.Sender
}

func New(conn *gorm.DB, cfg config.Config, sender mail.Sender) *Server {
	if sender == nil {
		sender = mail.Disabled{}
	}
	return &Server{
		db:   conn,
		cfg:  cfg,
		mail: sender,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /host/", s.handleHostView)
	mux.HandleFunc("GET /play/", s.handlePlayView)
	mux.HandleFunc("GET /intake/", s.handleIntakeView)
	mux.HandleFunc("POST /api/mock-purchase", s.handleMockPurchase)
	mux.HandleFunc("POST /api/redeem", s.handleRedeem)
	mux.HandleFunc("POST /api/intake/save", s.handleIntakeSave)
	mux.HandleFunc("POST /api/intake/after-submit", s.handleIntakeAfterSubmit)
	mux.HandleFunc("POST /api/invite/player", s.handleInvitePlayer)
	mux.HandleFunc("GET /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("POST /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("GET /api/play/", s.handlePlayState)
	return mux
}

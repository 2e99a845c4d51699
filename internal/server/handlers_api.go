package server

import (
	"net/http"
)

type mockPurchaseRequest struct {
	PackSize int    `json:"packSize" validate:"required,min=6,max=12"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type redeemRequest struct {
	Code string `json:"code"`
}

type setupRequest struct {
	HostPin string   `json:"hostPin" validate:"required"`
	Players []string `json:"players" validate:"required,min=1,max=12"`
}

type intakeSaveRequest struct {
	Code    string        `json:"code" validate:"required"`
	Answers intakeAnswers `json:"answers"`
}

type afterSubmitRequest struct {
	GameID uint `json:"gameId" validate:"required"`
}

type inviteRequest struct {
	GameID   uint   `json:"gameId" validate:"required"`
	PlayerID uint   `json:"playerId" validate:"required"`
	HostPin  string `json:"hostPin" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type setRoundRequest struct {
	HostPin string `json:"hostPin" validate:"required"`
	Round   *int   `json:"round" validate:"required,min=0,max=4"`
}

func (s *Server) handleMockPurchase(w http.ResponseWriter, r *http.Request) {
	var req mockPurchaseRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "packSize is required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	result, err := s.createMockPurchase(r.Context(), req.PackSize, req.Email)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"redeemCode":  result.RedeemCode,
		"gameId":      result.GameID,
		"hostPin":     result.HostPin,
		"playerCount": result.PlayerCount,
	})
}

func (s *Server) handleRedeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}
	result, err := s.redeemPurchase(req.Code)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":  result.GameID,
		"hostPin": result.HostPin,
	})
}

func (s *Server) handleIntakeSave(w http.ResponseWriter, r *http.Request) {
	var req intakeSaveRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "code and answers are required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	player, err := s.saveIntake(req.Code, req.Answers)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"gameId": player.GameID,
	})
}

func (s *Server) handleIntakeAfterSubmit(w http.ResponseWriter, r *http.Request) {
	var req afterSubmitRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "gameId is required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	status, err := s.afterIntakeSubmit(r.Context(), req.GameID)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	resp := map[string]any{
		"ok":       true,
		"ready":    status.Ready,
		"total":    status.Total,
		"complete": status.Complete,
	}
	if status.Notified {
		resp["notified"] = true
	}
	if status.AlreadyNotified {
		resp["alreadyNotified"] = true
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInvitePlayer(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "gameId and playerId are required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	result, err := s.invitePlayer(r.Context(), req.GameID, req.PlayerID, req.HostPin, req.Email)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"email":     result.Email,
		"messageId": result.MessageID,
		"intakeUrl": result.IntakeURL,
	})
}

func (s *Server) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	gameID, action, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		switch action {
		case "host":
			s.handleHostState(w, r, gameID)
		default:
			http.NotFound(w, r)
		}
	case http.MethodPost:
		switch action {
		case "setup":
			s.handleSetup(w, r, gameID)
		case "round":
			s.handleSetRound(w, r, gameID)
		default:
			http.NotFound(w, r)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request, gameID uint) {
	var req setupRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "hostPin and players are required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	result, err := s.setupGame(gameID, req.HostPin, req.Players)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	players := make([]map[string]any, 0, len(result.Players))
	for _, player := range result.Players {
		players = append(players, map[string]any{
			"id":       player.ID,
			"name":     player.Name,
			"joinCode": player.JoinCode,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"alreadySetUp": result.AlreadySetUp,
		"players":      players,
	})
}

func (s *Server) handleSetRound(w http.ResponseWriter, r *http.Request, gameID uint) {
	var req setRoundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "hostPin and round are required")
		return
	}
	if err := validateRequest(req); err != nil {
		writeFlowError(w, err)
		return
	}
	game, err := s.setRound(gameID, req.HostPin, *req.Round)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":           true,
		"currentRound": game.CurrentRound,
	})
}

func (s *Server) handleHostState(w http.ResponseWriter, r *http.Request, gameID uint) {
	view, err := s.hostState(gameID, r.URL.Query().Get("pin"))
	if err != nil {
		writeFlowError(w, err)
		return
	}
	players := make([]map[string]any, 0, len(view.Players))
	for _, player := range view.Players {
		players = append(players, map[string]any{
			"id":             player.ID,
			"name":           player.Name,
			"joinCode":       player.JoinCode,
			"intakeComplete": player.IntakeComplete,
			"inviteEmail":    player.InviteEmail,
			"intakeUrl":      s.intakeURL(player.JoinCode),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId":         view.GameID,
		"status":         view.Status,
		"currentRound":   view.CurrentRound,
		"storyGenerated": view.StoryGenerated,
		"players":        players,
	})
}

func (s *Server) handlePlayState(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCodePath(r.URL.Path, "/api/play/")
	if !ok {
		http.NotFound(w, r)
		return
	}
	view, err := s.playerState(code)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"view":        view.View,
		"playerName":  view.PlayerName,
		"gameStatus":  view.GameStatus,
		"round":       view.RoundNumber,
		"roundTitle":  view.RoundTitle,
		"narration":   view.Narration,
		"privateText": view.PrivateText,
	})
}

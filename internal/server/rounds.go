package server

import (
	"errors"
	"log"

	"dead-air/internal/db"

	"gorm.io/gorm"
)

const (
	viewWaiting         = "waiting"
	viewPregame         = "pregame"
	viewRound           = "round"
	viewAwaitingContent = "awaiting_content"
)

// setRound moves the game's round pointer. It is deliberately
// non-monotonic: the host can jump backward to replay a round. The only
// gates are the PIN and the story_generated flag the publishing step sets.
func (s *Server) setRound(gameID uint, pin string, round int) (*db.Game, error) {
	game, err := s.findGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := requireHostPin(game, pin); err != nil {
		return nil, err
	}
	if round < 0 || round > roundsPerGame {
		return nil, validationError("round must be between 0 and %d", roundsPerGame)
	}
	if !game.StoryGenerated {
		return nil, notReadyError("story has not been generated yet")
	}
	if err := s.db.Model(&db.Game{}).Where("id = ?", game.ID).Update("current_round", round).Error; err != nil {
		return nil, storeError(err)
	}
	game.CurrentRound = round
	log.Printf("round set game_id=%d round=%d", game.ID, round)
	return game, nil
}

type playerView struct {
	View        string
	PlayerName  string
	GameStatus  string
	RoundNumber int
	RoundTitle  string
	Narration   string
	PrivateText string
}

// playerState is the read-only projection the phone view polls. Missing
// or unauthored content is an expected state while the operator is still
// writing, so it renders as "awaiting content" rather than an error.
func (s *Server) playerState(code string) (*playerView, error) {
	player, err := s.findPlayerByJoinCode(code)
	if err != nil {
		return nil, err
	}
	game, err := s.findGame(player.GameID)
	if err != nil {
		return nil, err
	}

	view := &playerView{
		PlayerName:  player.Name,
		GameStatus:  game.Status,
		RoundNumber: game.CurrentRound,
	}
	if !game.StoryGenerated {
		view.View = viewWaiting
		return view, nil
	}
	if game.CurrentRound == 0 {
		view.View = viewPregame
		return view, nil
	}

	var round db.Round
	err = s.db.Where("game_id = ? AND number = ?", game.ID, game.CurrentRound).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			view.View = viewAwaitingContent
			return view, nil
		}
		return nil, storeError(err)
	}
	var content db.PlayerRoundContent
	err = s.db.Where("game_id = ? AND player_id = ? AND round_number = ?", game.ID, player.ID, game.CurrentRound).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			view.View = viewAwaitingContent
			return view, nil
		}
		return nil, storeError(err)
	}
	if !round.Authored || !content.Authored {
		view.View = viewAwaitingContent
		return view, nil
	}

	view.View = viewRound
	view.RoundTitle = round.Title
	view.Narration = round.NarrationText
	view.PrivateText = content.PrivateText
	return view, nil
}

type hostPlayer struct {
	ID             uint
	Name           string
	JoinCode       string
	IntakeComplete bool
	InviteEmail    string
}

type hostView struct {
	GameID         uint
	Status         string
	CurrentRound   int
	StoryGenerated bool
	Players        []hostPlayer
}

// hostState backs the host console poll: game flags plus every player's
// intake progress and join code.
func (s *Server) hostState(gameID uint, pin string) (*hostView, error) {
	game, err := s.findGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := requireHostPin(game, pin); err != nil {
		return nil, err
	}
	players, err := s.findGamePlayers(game.ID)
	if err != nil {
		return nil, err
	}
	view := &hostView{
		GameID:         game.ID,
		Status:         game.Status,
		CurrentRound:   game.CurrentRound,
		StoryGenerated: game.StoryGenerated,
		Players:        make([]hostPlayer, 0, len(players)),
	}
	for _, player := range players {
		view.Players = append(view.Players, hostPlayer{
			ID:             player.ID,
			Name:           player.Name,
			JoinCode:       player.JoinCode,
			IntakeComplete: player.IntakeComplete,
			InviteEmail:    player.InviteEmail,
		})
	}
	return view, nil
}

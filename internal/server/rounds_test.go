package server

import (
	"net/http"
	"testing"

	"dead-air/internal/db"
)

func TestSetRoundRequiresStoryGenerated(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	setUpGame(t, ts, gameID, hostPin, []string{"Margot", "Julian"})

	for round := 0; round <= 4; round++ {
		resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
			"hostPin": hostPin,
			"round":   round,
		})
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("round %d: expected status %d, got %d", round, http.StatusConflict, resp.StatusCode)
		}
	}

	game, err := srv.findGame(gameID)
	if err != nil {
		t.Fatalf("find game: %v", err)
	}
	if game.CurrentRound != 0 {
		t.Fatalf("expected current_round untouched, got %d", game.CurrentRound)
	}
}

func TestSetRoundRequiresPin(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
		"hostPin": "WRONGPIN",
		"round":   1,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, resp.StatusCode)
	}

	game, err := srv.findGame(gameID)
	if err != nil {
		t.Fatalf("find game: %v", err)
	}
	if game.CurrentRound != 0 {
		t.Fatalf("expected current_round untouched, got %d", game.CurrentRound)
	}
}

func TestSetRoundJumpsFreely(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	// Forward, backward, back to pre-game: the pointer is not monotonic.
	for _, round := range []int{3, 1, 4, 0} {
		resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
			"hostPin": hostPin,
			"round":   round,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("round %d: expected status %d, got %d", round, http.StatusOK, resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if int(body["currentRound"].(float64)) != round {
			t.Fatalf("expected currentRound %d, got %v", round, body["currentRound"])
		}
	}
}

func TestSetRoundOutOfRange(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
		"hostPin": hostPin,
		"round":   5,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPlayerStateWaiting(t *testing.T) {
	_, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	players := setUpGame(t, ts, gameID, hostPin, []string{"Margot"})

	body := decodeBody(t, doRequest(t, ts, http.MethodGet, "/api/play/"+players[0]["joinCode"].(string), nil))
	if body["view"] != viewWaiting {
		t.Fatalf("expected %q view, got %v", viewWaiting, body["view"])
	}
	if body["playerName"] != "Margot" {
		t.Fatalf("expected player name, got %v", body["playerName"])
	}
}

func TestPlayerStatePregame(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	players := setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	body := decodeBody(t, doRequest(t, ts, http.MethodGet, "/api/play/"+players[0]["joinCode"].(string), nil))
	if body["view"] != viewPregame {
		t.Fatalf("expected %q view, got %v", viewPregame, body["view"])
	}
}

func TestPlayerStateAwaitingContent(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	players := setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
		"hostPin": hostPin,
		"round":   2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set round: got %d", resp.StatusCode)
	}

	// Rows exist but nothing is authored yet: still a calm waiting state,
	// never an error.
	body := decodeBody(t, doRequest(t, ts, http.MethodGet, "/api/play/"+players[0]["joinCode"].(string), nil))
	if body["view"] != viewAwaitingContent {
		t.Fatalf("expected %q view, got %v", viewAwaitingContent, body["view"])
	}
}

func TestPlayerStateRoundContent(t *testing.T) {
	srv, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	players := setUpGame(t, ts, gameID, hostPin, []string{"Margot"})
	markStoryGenerated(t, srv, gameID)

	err := srv.db.Model(&db.Round{}).
		Where("game_id = ? AND number = ?", gameID, 2).
		Updates(map[string]any{
			"title":          "The Séance",
			"narration_text": "The radio crackles to life.",
			"authored":       true,
		}).Error
	if err != nil {
		t.Fatalf("author round: %v", err)
	}
	err = srv.db.Model(&db.PlayerRoundContent{}).
		Where("game_id = ? AND round_number = ?", gameID, 2).
		Updates(map[string]any{
			"private_text": "You recognize the voice. Say nothing.",
			"authored":     true,
		}).Error
	if err != nil {
		t.Fatalf("author content: %v", err)
	}

	resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "round"), map[string]any{
		"hostPin": hostPin,
		"round":   2,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set round: got %d", resp.StatusCode)
	}

	body := decodeBody(t, doRequest(t, ts, http.MethodGet, "/api/play/"+players[0]["joinCode"].(string), nil))
	if body["view"] != viewRound {
		t.Fatalf("expected %q view, got %v", viewRound, body["view"])
	}
	if body["roundTitle"] != "The Séance" {
		t.Fatalf("expected round title, got %v", body["roundTitle"])
	}
	if body["narration"] != "The radio crackles to life." {
		t.Fatalf("expected narration, got %v", body["narration"])
	}
	if body["privateText"] != "You recognize the voice. Say nothing." {
		t.Fatalf("expected private text, got %v", body["privateText"])
	}
}

func TestPlayerStateUnknownCode(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp := doRequest(t, ts, http.MethodGet, "/api/play/NOSUCHCODE", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestHostState(t *testing.T) {
	_, ts, _ := newTestServer(t)
	_, gameID, hostPin := mockPurchase(t, ts, 6)
	players := setUpGame(t, ts, gameID, hostPin, []string{"Margot", "Julian"})
	saveIntakeFor(t, ts, players[0]["joinCode"].(string))

	resp := doRequest(t, ts, http.MethodGet, gamePath(gameID, "host")+"?pin="+hostPin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != db.GameStatusCollectingIntakes {
		t.Fatalf("expected collecting status, got %v", body["status"])
	}
	list := body["players"].([]any)
	if len(list) != 2 {
		t.Fatalf("expected 2 players, got %d", len(list))
	}
	first := list[0].(map[string]any)
	if first["intakeComplete"] != true {
		t.Fatalf("expected first player complete, got %v", first)
	}
	assertString(t, first["intakeUrl"])
}

func TestHostStateWrongPin(t *testing.T) {
	_, ts, _ := newTestServer(t)
	_, gameID, _ := mockPurchase(t, ts, 6)

	resp := doRequest(t, ts, http.MethodGet, gamePath(gameID, "host")+"?pin=WRONGPIN", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, resp.StatusCode)
	}
}

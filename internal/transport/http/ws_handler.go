package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"human-or-ai/internal/app"
	"human-or-ai/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.QuizService
	defaults app.GameConfig
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, defaults app.GameConfig) *WSHandler {
	return &WSHandler{
		service:  service,
		defaults: defaults,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	// Index is omitted in per-round mode to answer the visible round.
	Index *int   `json:"index"`
	Guess string `json:"guess"`
}

type namePayload struct {
	Name string `json:"name"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeLeaderboard returns the ranked leaderboard as JSON.
func (h *WSHandler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Leaderboard().Rank()); err != nil {
		log.Printf("encode leaderboard: %v", err)
	}
}

// ServeWS upgrades HTTP requests to websockets and drives one game per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cfg, err := h.defaults.With(app.Selectors{
		Mode:       q.Get("mode"),
		Difficulty: q.Get("difficulty"),
		Count:      q.Get("count"),
		Bank:       q.Get("bank"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	game := h.service.NewGame(q.Get("name"))
	defer game.Close()

	views, cancelViews := game.Subscribe()
	defer cancelViews()
	boards, cancelBoards := h.service.Leaderboard().Subscribe()
	defer cancelBoards()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			var msg outboundMessage[any]
			select {
			case view, ok := <-views:
				if !ok {
					return
				}
				msg = outboundMessage[any]{Type: "state", Payload: view}
			case board, ok := <-boards:
				if !ok {
					return
				}
				msg = outboundMessage[any]{Type: "leaderboard", Payload: board}
			case <-closeSignals:
				return
			}
			select {
			case send <- msg:
			case <-closeSignals:
				return
			}
		}
	}()

	sendError := func(err error) {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
	}

	if _, err := game.Start(r.Context(), cfg); err != nil {
		sendError(err)
		send <- outboundMessage[any]{Type: "state", Payload: game.View()}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.handle(r, game, inbound, &cfg); err != nil {
			sendError(err)
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// handle applies one inbound frame. Successful transitions reach the client
// through the game subscription; only failures are reported here.
func (h *WSHandler) handle(r *http.Request, game *app.Game, inbound inboundMessage, cfg *app.GameConfig) error {
	switch inbound.Type {
	case "start":
		var payload app.Selectors
		if len(inbound.Payload) > 0 {
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				return errors.New("invalid start payload")
			}
		}
		next, err := cfg.With(payload)
		if err != nil {
			return err
		}
		if _, err := game.Start(r.Context(), next); err != nil {
			return err
		}
		*cfg = next
		return nil
	case "restart":
		_, err := game.Restart(r.Context())
		return err
	case "name":
		var payload namePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errors.New("invalid name payload")
		}
		game.SetPlayer(payload.Name)
		return nil
	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errors.New("invalid answer payload")
		}
		guess, err := domain.ParseLabel(payload.Guess)
		if err != nil {
			return err
		}
		if payload.Index == nil {
			_, err = game.AnswerCurrent(guess)
		} else {
			_, err = game.RecordAnswer(*payload.Index, guess)
		}
		return err
	case "submit":
		_, err := game.Submit()
		return err
	default:
		return errors.New("unsupported message type")
	}
}

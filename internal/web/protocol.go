// Package web serves the browser front-end: embedded static assets plus a
// WebSocket endpoint that drives one simulation session per connection and
// mirrors its events to the client as JSON.
package web

import (
	"encoding/json"

	"github.com/Hect0r3rd/waterdrop/internal/game"
)

// event is an outbound message to the browser. Type selects which of the
// optional fields are meaningful.
type event struct {
	Type string `json:"type"`

	Drop      *dropDTO `json:"drop,omitempty"`
	ID        int      `json:"id,omitempty"`
	Score     int      `json:"score,omitempty"`
	Seconds   int      `json:"seconds,omitempty"`
	X         float64  `json:"x,omitempty"`
	Y         float64  `json:"y,omitempty"`
	Delta     int      `json:"delta,omitempty"`
	Message   string   `json:"message,omitempty"`
	Won       bool     `json:"won,omitempty"`
	Threshold int      `json:"threshold,omitempty"`

	Difficulty string `json:"difficulty,omitempty"`
	Goal       int    `json:"goal,omitempty"`
	TimeLimit  int    `json:"timeLimit,omitempty"`

	Sound string `json:"sound,omitempty"`

	FieldWidth   float64 `json:"fieldWidth,omitempty"`
	FieldHeight  float64 `json:"fieldHeight,omitempty"`
	CatcherWidth float64 `json:"catcherWidth,omitempty"`
}

// dropDTO carries a drop's spawn-time data to the renderer.
type dropDTO struct {
	ID           int     `json:"id"`
	Polluted     bool    `json:"polluted"`
	Size         float64 `json:"size"`
	X            float64 `json:"x"`
	FallDuration float64 `json:"fallDuration"`
	Points       int     `json:"points"`
}

func dropToDTO(d game.Drop) *dropDTO {
	return &dropDTO{
		ID:           d.ID,
		Polluted:     d.Kind == game.DropPolluted,
		Size:         d.Size,
		X:            d.X,
		FallDuration: d.FallDuration,
		Points:       d.Points,
	}
}

func soundName(kind game.SoundKind) string {
	switch kind {
	case game.SoundCollect:
		return "collect"
	case game.SoundMiss:
		return "miss"
	case game.SoundButton:
		return "button"
	case game.SoundWin:
		return "win"
	}
	return ""
}

// command is an inbound message from the browser.
type command struct {
	Type       string  `json:"type"`
	X          float64 `json:"x"`
	ID         int     `json:"id"`
	Difficulty string  `json:"difficulty"`
}

func decodeCommand(data []byte) (command, error) {
	var cmd command
	err := json.Unmarshal(data, &cmd)
	return cmd, err
}

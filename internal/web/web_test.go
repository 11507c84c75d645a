package web

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Hect0r3rd/waterdrop/internal/game"
)

func TestDecodeCommand(t *testing.T) {
	cmd, err := decodeCommand([]byte(`{"type":"move","x":123.5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cmd.Type != "move" || cmd.X != 123.5 {
		t.Fatalf("got %+v", cmd)
	}

	if _, err := decodeCommand([]byte(`not json`)); err == nil {
		t.Fatal("expected error for malformed command")
	}
}

func TestApplyCommand(t *testing.T) {
	s := game.NewSession(game.NopPresenter{}, game.Normal, game.Options{})

	applyCommand(s, command{Type: "difficulty", Difficulty: "hard"})
	if s.Difficulty() != game.Hard {
		t.Fatalf("difficulty = %v, want hard", s.Difficulty())
	}

	applyCommand(s, command{Type: "start"})
	if s.State() != game.StateRunning {
		t.Fatalf("state = %v, want running", s.State())
	}

	applyCommand(s, command{Type: "move", X: 9999})
	want := float64(game.FieldWidth - game.CatcherWidth)
	if s.CatcherX() != want {
		t.Fatalf("catcher = %v, want %v", s.CatcherX(), want)
	}

	// Unknown types and stray activations are ignored.
	applyCommand(s, command{Type: "bogus"})
	applyCommand(s, command{Type: "activate", ID: 42})
}

func TestSoundNames(t *testing.T) {
	cases := map[game.SoundKind]string{
		game.SoundCollect: "collect",
		game.SoundMiss:    "miss",
		game.SoundButton:  "button",
		game.SoundWin:     "win",
	}
	for kind, want := range cases {
		if got := soundName(kind); got != want {
			t.Errorf("soundName(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestDropDTO(t *testing.T) {
	d := game.Drop{ID: 7, Kind: game.DropPolluted, Size: 75, X: 120, FallDuration: 1.9, Points: 2}
	dto := dropToDTO(d)
	if dto.ID != 7 || !dto.Polluted || dto.Size != 75 || dto.X != 120 || dto.FallDuration != 1.9 || dto.Points != 2 {
		t.Fatalf("got %+v", dto)
	}
}

func TestSessionOverWebSocket(t *testing.T) {
	srv := httptest.NewServer(Handler(log.New(io.Discard)))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello event
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	if hello.Type != "hello" {
		t.Fatalf("first event = %q, want hello", hello.Type)
	}
	if hello.FieldWidth != game.FieldWidth || hello.CatcherWidth != game.CatcherWidth {
		t.Fatalf("hello geometry = %+v", hello)
	}

	if err := conn.WriteJSON(command{Type: "start"}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	// Starting a run pushes the initial score and countdown to the client.
	seen := map[string]bool{}
	for !seen["score"] || !seen["time"] {
		var ev event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read after start (seen %v): %v", seen, err)
		}
		seen[ev.Type] = true
	}
}

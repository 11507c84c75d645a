package web

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Hect0r3rd/waterdrop/internal/game"
)

// advanceInterval is how often the per-connection driver steps the
// simulation. The browser interpolates drop motion between updates from
// each drop's spawn time and fall duration, so a coarse step is fine.
const advanceInterval = 50 * time.Millisecond

// wsPresenter mirrors simulation events onto the WebSocket as JSON. All
// calls happen on the connection's driver goroutine, so writes never race.
type wsPresenter struct {
	conn   *websocket.Conn
	failed bool
}

func (p *wsPresenter) send(ev event) {
	if p.failed {
		return
	}
	if err := p.conn.WriteJSON(ev); err != nil {
		// The read pump notices the broken connection and stops the
		// driver; until then just stop emitting.
		p.failed = true
	}
}

func (p *wsPresenter) DropSpawned(d game.Drop) {
	p.send(event{Type: "drop", Drop: dropToDTO(d)})
}

func (p *wsPresenter) DropRemoved(id int) {
	p.send(event{Type: "dropGone", ID: id})
}

func (p *wsPresenter) ScoreChanged(score int) {
	p.send(event{Type: "score", Score: score})
}

func (p *wsPresenter) TimeChanged(seconds int) {
	p.send(event{Type: "time", Seconds: seconds})
}

func (p *wsPresenter) ScorePopup(x, y float64, delta int) {
	p.send(event{Type: "popup", X: x, Y: y, Delta: delta})
}

func (p *wsPresenter) MilestoneReached(msg string) {
	p.send(event{Type: "milestone", Message: msg})
}

func (p *wsPresenter) DifficultyChanged(d game.Difficulty, prof game.Profile) {
	p.send(event{
		Type:       "difficulty",
		Difficulty: d.String(),
		Goal:       prof.WinThreshold,
		TimeLimit:  prof.TimeLimit,
	})
}

func (p *wsPresenter) SessionEnded(won bool, score, threshold int, d game.Difficulty, msg string) {
	p.send(event{
		Type:       "end",
		Won:        won,
		Score:      score,
		Threshold:  threshold,
		Difficulty: d.String(),
		Message:    msg,
	})
}

func (p *wsPresenter) Sound(kind game.SoundKind) {
	p.send(event{Type: "sound", Sound: soundName(kind)})
}

var _ game.Presenter = (*wsPresenter)(nil)

// serveSession owns one connection: a read pump goroutine feeds commands
// into the driver loop, which is the only goroutine touching the session
// and the only one writing to the socket.
func serveSession(conn *websocket.Conn, logger *log.Logger) {
	defer conn.Close()

	presenter := &wsPresenter{conn: conn}
	session := game.NewSession(presenter, game.Normal, game.Options{})

	// Field geometry first so the client can set up its canvas, then the
	// initial goal/time preview.
	presenter.send(event{
		Type:         "hello",
		FieldWidth:   game.FieldWidth,
		FieldHeight:  game.FieldHeight,
		CatcherWidth: game.CatcherWidth,
		Difficulty:   session.Difficulty().String(),
		Goal:         session.Profile().WinThreshold,
		TimeLimit:    session.Profile().TimeLimit,
	})

	cmds := make(chan command, 64)
	go readPump(conn, cmds, logger)

	ticker := time.NewTicker(advanceInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case cmd, ok := <-cmds:
			if !ok {
				return
			}
			applyCommand(session, cmd)
		case now := <-ticker.C:
			session.Advance(now.Sub(last))
			last = now
		}
	}
}

// readPump forwards inbound commands until the connection breaks, then
// closes the channel to stop the driver.
func readPump(conn *websocket.Conn, cmds chan<- command, logger *log.Logger) {
	defer close(cmds)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read failed", "err", err)
			}
			return
		}
		cmd, err := decodeCommand(data)
		if err != nil {
			logger.Debug("bad client command", "err", err)
			continue
		}
		select {
		case cmds <- cmd:
		default:
			// Client is flooding; drop the command.
		}
	}
}

// applyCommand maps one inbound message onto the session. Unknown types
// are ignored; the session's own state guards make every call safe.
func applyCommand(s *game.Session, cmd command) {
	switch cmd.Type {
	case "start":
		s.Start(s.Difficulty())
	case "reset":
		s.Reset()
	case "move":
		s.SetCatcher(cmd.X)
	case "activate":
		s.ActivateDrop(cmd.ID)
	case "difficulty":
		s.SetDifficulty(game.ParseDifficulty(cmd.Difficulty))
	}
}

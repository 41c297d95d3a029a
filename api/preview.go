package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"logotint/engine"
	"logotint/model"
)

// Preview sessions may send at most previewRate messages per second.
const (
	previewRate  = 30
	previewBurst = 60
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 16384,
}

// Message types of the live preview protocol.
const (
	msgSet     = "set"
	msgPreset  = "preset"
	msgReset   = "reset"
	msgPreview = "preview"
	msgStats   = "stats"
	msgError   = "error"
)

type clientMessage struct {
	Type   string        `json:"type"`
	Colors model.Palette `json:"colors"`
	Name   string        `json:"name,omitempty"`
}

type previewMessage struct {
	Type     string        `json:"type"`
	Session  string        `json:"session"`
	Document string        `json:"document"`
	Colors   model.Palette `json:"colors"`
	Errors   []string      `json:"errors"`
}

type statsMessage struct {
	Type  string           `json:"type"`
	Stats model.UsageStats `json:"stats"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// handlePreview runs one live preview session. Every render starts from the
// pristine template with the session's merged palette.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBodySize)

	s.ws.Add(conn)
	defer s.ws.Remove(conn)

	id := uuid.NewString()
	log := s.logger.With().Str("session", id).Logger()
	log.Debug().Msg("preview session opened")
	defer log.Debug().Msg("preview session closed")

	ctx := r.Context()
	if _, err := s.store.RecordSession(ctx); err != nil {
		log.Warn().Err(err).Msg("record session")
	}

	sess := engine.NewSession(s.template, engine.Options{CaseSensitive: s.opts.CaseSensitive})
	limiter := rate.NewLimiter(previewRate, previewBurst)

	res, err := sess.Render()
	if err != nil {
		log.Error().Err(err).Msg("initial render")
		return
	}
	if err := s.ws.WriteJSON(conn, s.previewOf(id, sess, res)); err != nil {
		return
	}

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("preview read")
			}
			return
		}
		if !limiter.Allow() {
			_ = s.ws.WriteJSON(conn, errorMessage{Type: msgError, Error: errRateLimited.Error()})
			continue
		}

		before := sess.Palette()
		switch msg.Type {
		case msgSet:
			res, err = sess.Update(msg.Colors)
		case msgPreset:
			p, perr := s.catalog.Get(msg.Name)
			if perr != nil {
				_ = s.ws.WriteJSON(conn, errorMessage{Type: msgError, Error: perr.Error()})
				continue
			}
			res, err = sess.Replace(p)
		case msgReset:
			res, err = sess.Reset()
		default:
			_ = s.ws.WriteJSON(conn, errorMessage{Type: msgError, Error: "unknown message type: " + msg.Type})
			continue
		}
		if err != nil {
			log.Error().Err(err).Msg("render")
			return
		}
		metricReplacements.Observe(float64(res.Replacements))

		if err := s.ws.WriteJSON(conn, s.previewOf(id, sess, res)); err != nil {
			return
		}

		if n := changedSlots(before, sess.Palette()); n > 0 {
			st, err := s.store.RecordColorChange(ctx, n, time.Now())
			if err != nil {
				log.Warn().Err(err).Msg("record color change")
				continue
			}
			s.ws.Broadcast(statsMessage{Type: msgStats, Stats: st})
		}
	}
}

func (s *Server) previewOf(id string, sess *engine.Session, res engine.Result) previewMessage {
	return previewMessage{
		Type:     msgPreview,
		Session:  id,
		Document: res.Document,
		Colors:   sess.Palette(),
		Errors:   res.Errors,
	}
}

func changedSlots(a, b model.Palette) int {
	n := 0
	for _, slot := range model.Slots() {
		if a.Get(slot) != b.Get(slot) {
			n++
		}
	}
	return n
}

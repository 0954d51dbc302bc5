// Package server exposes the translation pipeline over a websocket, so
// an external hand-tracking client can stream per-frame predictions and
// receive live text updates on the same connection.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/pipeline"
	"github.com/neeer4j/SignLang/internal/sentence"
	"github.com/neeer4j/SignLang/internal/vocab"
)

// Inbound is a message from the client.
type Inbound struct {
	Type string `json:"type"` // frame, stop, reset, space, backspace

	// Frame payload
	Label      string  `json:"label,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Kind       string  `json:"kind,omitempty"`
}

// Outbound is a message to the client.
type Outbound struct {
	Type string `json:"type"` // gesture, text, translation, error

	// gesture
	Label      string  `json:"label,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	// text
	Text    string `json:"text,omitempty"`
	Preview string `json:"preview,omitempty"`

	// translation
	Words        []string `json:"words,omitempty"`
	GestureCount int      `json:"gesture_count,omitempty"`
	DurationMS   int64    `json:"duration_ms,omitempty"`

	Error string `json:"error,omitempty"`
}

// Server handles websocket ingest. Each connection gets its own
// pipeline; no state is shared between connections.
type Server struct {
	cfg      config.Settings
	vocab    *vocab.Vocabulary
	mode     sentence.Mode
	upgrader websocket.Upgrader
}

// New creates a server. The settings are validated per connection when
// the pipeline is built, but validating here fails fast at startup.
func New(v *vocab.Vocabulary, mode sentence.Mode, cfg config.Settings) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v == nil {
		v = vocab.New()
	}
	return &Server{
		cfg:   cfg,
		vocab: v,
		mode:  mode,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the HTTP routing surface.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/ws/frames", s.handleFrames)
	router.GET("/api/vocab", s.handleVocab)
	router.GET("/healthz", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.cfg.ServerAddr)
	return http.ListenAndServe(s.cfg.ServerAddr, s.Handler())
}

func (s *Server) handleVocab(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Words   []*vocab.SignDef `json:"words"`
		Letters []*vocab.SignDef `json:"letters"`
	}{s.vocab.Words(), s.vocab.Letters()})
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	p, err := pipeline.New(s.vocab, s.mode, s.cfg)
	if err != nil {
		conn.WriteJSON(Outbound{Type: "error", Error: err.Error()})
		return
	}

	// Callbacks fire inside the read loop, so writes stay on one
	// goroutine and need no locking.
	p.SetCallbacks(pipeline.Callbacks{
		OnGesture: func(g gesture.Recognized) {
			conn.WriteJSON(Outbound{Type: "gesture", Label: g.Label, Confidence: g.Confidence})
		},
		OnTextUpdated: func(text, preview string) {
			conn.WriteJSON(Outbound{Type: "text", Text: text, Preview: preview})
		},
		OnTranslation: func(result gesture.TranslationResult) {
			conn.WriteJSON(translationMessage(result))
		},
	})
	p.Start()

	for {
		var msg Inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("reading frame message: %v", err)
			}
			return
		}

		switch msg.Type {
		case "frame":
			kind := gesture.Static
			if msg.Kind == string(gesture.Dynamic) {
				kind = gesture.Dynamic
			}
			p.ProcessFrame(gesture.Prediction{
				Label:      msg.Label,
				Confidence: msg.Confidence,
				Kind:       kind,
				Time:       time.Now(),
			})
		case "stop":
			// Valid results go out through the translation callback;
			// empty ones still get an explicit ack.
			if result := p.StopAndTranslate(); !result.Valid() {
				conn.WriteJSON(translationMessage(result))
			}
			p.Start()
		case "reset":
			p.Reset()
			conn.WriteJSON(Outbound{Type: "text", Text: "", Preview: p.Preview()})
		case "space":
			p.ProcessGesture(gesture.Recognized{Label: "space", Kind: gesture.Static, Confidence: 1}, time.Now())
		case "backspace":
			p.ProcessGesture(gesture.Recognized{Label: "backspace", Kind: gesture.Static, Confidence: 1}, time.Now())
		default:
			conn.WriteJSON(Outbound{Type: "error", Error: "unknown message type: " + msg.Type})
		}
	}
}

func translationMessage(result gesture.TranslationResult) Outbound {
	return Outbound{
		Type:         "translation",
		Text:         result.Text,
		Words:        result.Words,
		GestureCount: result.GestureCount,
		DurationMS:   result.Duration.Milliseconds(),
	}
}

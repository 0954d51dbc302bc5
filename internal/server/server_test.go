package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/sentence"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := New(nil, sentence.ModeSentence, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/frames"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	cfg := config.Default()
	cfg.WindowSize = 0
	if _, err := New(nil, sentence.ModeSentence, cfg); err == nil {
		t.Fatal("expected error for invalid settings")
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestVocabEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/vocab")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Words   []json.RawMessage `json:"words"`
		Letters []json.RawMessage `json:"letters"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding vocab: %v", err)
	}
	if len(body.Letters) != 26 {
		t.Errorf("letters = %d, want 26", len(body.Letters))
	}
	if len(body.Words) == 0 {
		t.Error("words empty")
	}
}

func TestFrameStreamEmitsGesture(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)

	for i := 0; i < 5; i++ {
		if err := conn.WriteJSON(Inbound{Type: "frame", Label: "A", Confidence: 0.9}); err != nil {
			t.Fatalf("writing frame: %v", err)
		}
	}

	var msg Outbound
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading message: %v", err)
	}
	if msg.Type != "gesture" || msg.Label != "A" {
		t.Errorf("msg = %+v, want gesture A", msg)
	}
}

func TestStopReturnsTranslation(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)

	for i := 0; i < 5; i++ {
		if err := conn.WriteJSON(Inbound{Type: "frame", Label: "A", Confidence: 0.9}); err != nil {
			t.Fatal(err)
		}
	}
	if err := conn.WriteJSON(Inbound{Type: "stop"}); err != nil {
		t.Fatal(err)
	}

	// First the stabilized gesture, then the forced translation.
	var msg Outbound
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "gesture" {
		t.Fatalf("first msg = %+v, want gesture", msg)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "translation" || msg.Text != "A" {
		t.Errorf("msg = %+v, want translation A", msg)
	}
}

func TestResetAcknowledged(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Inbound{Type: "reset"}); err != nil {
		t.Fatal(err)
	}
	var msg Outbound
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "text" || msg.Preview != "(waiting...)" {
		t.Errorf("msg = %+v, want empty text ack", msg)
	}
}

func TestUnknownMessageType(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Inbound{Type: "bogus"}); err != nil {
		t.Fatal(err)
	}
	var msg Outbound
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "error" {
		t.Errorf("msg = %+v, want error", msg)
	}
}

package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/abhisek/vivadesk/internal/media"
)

// wsMessage is one client frame on the streaming endpoint.
type wsMessage struct {
	Type   string `json:"type"`
	Data   string `json:"data,omitempty"`
	Format string `json:"format,omitempty"`
}

// wsReply is one server frame.
type wsReply struct {
	Type   string `json:"type"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleWebSocket serves the streaming analysis channel. Frames carry the
// same payloads as the REST endpoints; recognition results feed the same
// session context when the session exists.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.allowedOrigin}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	defer conn.Close()

	sessionID := r.PathValue("session_id")
	log := requestLogger(r.Context()).With("session_id", sessionID)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", "error", err)
			}
			return
		}

		var reply wsReply
		switch msg.Type {
		case "screen_capture":
			reply = s.wsAnalyzeScreen(r.Context(), sessionID, msg.Data)
		case "audio_chunk":
			reply = s.wsTranscribe(r.Context(), sessionID, msg.Data, msg.Format)
		case "ping":
			reply = wsReply{Type: "pong"}
		default:
			reply = wsReply{Type: "error", Error: "unknown message type"}
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("websocket write failed", "error", err)
			return
		}
	}
}

func (s *Server) wsAnalyzeScreen(ctx context.Context, sessionID, data string) wsReply {
	image, hint, err := media.DecodeBase64(data)
	if err != nil {
		return wsReply{Type: "screen_analysis", Error: "invalid base64 image"}
	}

	ocr, err := s.vision.ExtractText(ctx, image, media.PickMIME(hint, image))
	if err != nil {
		return wsReply{Type: "screen_analysis", Error: "screen analysis failed"}
	}

	if sess, err := s.registry.Get(sessionID); err == nil {
		sess.Lock()
		sess.Context.AppendScreenText(ocr.Text)
		sess.Unlock()
	}

	return wsReply{Type: "screen_analysis", Result: ocr}
}

func (s *Server) wsTranscribe(ctx context.Context, sessionID, data, format string) wsReply {
	audio, _, err := media.DecodeBase64(data)
	if err != nil {
		return wsReply{Type: "transcription", Error: "invalid base64 audio"}
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio, format)
	if err != nil {
		return wsReply{Type: "transcription", Error: "transcription failed"}
	}

	if sess, err := s.registry.Get(sessionID); err == nil {
		sess.Lock()
		sess.Context.AppendSpeechTranscript(transcript.Text)
		sess.Unlock()
	}

	return wsReply{Type: "transcription", Result: transcript}
}

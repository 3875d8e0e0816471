package handlers

import (
	"encoding/json"
	"log"

	"github.com/LovationAdmin/calc-api/config"
	"github.com/LovationAdmin/calc-api/services"
	"github.com/LovationAdmin/calc-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/olahol/melody"
)

const sessionIDKey = "session_id"

type WSHandler struct {
	M        *melody.Melody
	Registry *services.Registry
}

// calcMessage is one calculation request sent over the socket
type calcMessage struct {
	ID    string          `json:"id"`
	Calc  string          `json:"calc"`
	Input json.RawMessage `json:"input"`
}

type calcReply struct {
	ID     string `json:"id,omitempty"`
	Calc   string `json:"calc,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func NewWSHandler(registry *services.Registry, cfg *config.Config) *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = cfg.WSMaxMessageSize

	// Keep-alive for hosts that close idle connections
	m.Config.PingPeriod = cfg.WSPingPeriod
	m.Config.PongWait = cfg.WSPongWait

	h := &WSHandler{M: m, Registry: registry}

	m.HandleConnect(func(s *melody.Session) {
		id := uuid.New().String()
		s.Set(sessionIDKey, id)
		utils.LogWebSocket("connected", id)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		utils.LogWebSocket("disconnected", sessionID(s))
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	m.HandleMessage(func(s *melody.Session, msg []byte) {
		if err := s.Write(h.Respond(sessionID(s), msg)); err != nil {
			log.Printf("⚠️ Error writing to session %s: %v", sessionID(s), err)
		}
	})

	return h
}

// HandleWS upgrades the request to a calculator socket
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// Respond runs the calculation described by one frame and encodes the reply.
// A frame that is not valid JSON is handled like an empty object.
func (h *WSHandler) Respond(sessionID string, msg []byte) []byte {
	var req calcMessage
	if err := json.Unmarshal(msg, &req); err != nil {
		req = calcMessage{}
	}

	reply := calcReply{ID: req.ID, Calc: req.Calc}
	if calc, ok := h.Registry.Get(req.Calc); ok {
		payload := services.DecodePayload(req.Input)
		utils.LogCalculation(req.Calc, sessionID, numericFields(payload))
		reply.Result = calc(payload)
	} else {
		reply.Error = "unknown calculator"
	}

	out, err := json.Marshal(reply)
	if err != nil {
		log.Printf("❌ Failed to encode websocket reply: %v", err)
		return []byte(`{"error":"internal error"}`)
	}
	return out
}

func (h *WSHandler) Close() error {
	return h.M.Close()
}

func sessionID(s *melody.Session) string {
	id, _ := s.Get(sessionIDKey)
	str, _ := id.(string)
	return str
}

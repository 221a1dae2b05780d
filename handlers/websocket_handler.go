package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/brackets"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub          *brackets.Hub
	medalService services.MedalService
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewWebSocketHandler accepts any origin when allowedOrigins contains "*".
func NewWebSocketHandler(hub *brackets.Hub, ms services.MedalService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	allowAll := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return &WebSocketHandler{
		hub:          hub,
		medalService: ms,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeWs godoc
// @Summary Live medal tally of a competition
// @Description Upgrades to a WebSocket. The current tally is sent first, then a MEDAL_TALLY_UPDATED message on every refresh.
// @Tags medals
// @Param competitionID path int true "Competition ID"
// @Router /ws/competitions/{competitionID} [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDFromURL(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tally, err := h.medalService.CompetitionTally(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Warn("Failed to upgrade websocket connection",
			slog.Int("competition_id", competitionID), slog.Any("error", err))
		return
	}

	roomID := brackets.CompetitionRoom(competitionID)
	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}

	initial, err := json.Marshal(brackets.WebSocketMessage{
		Type:    brackets.MessageMedalTallyUpdated,
		Payload: tally,
		RoomID:  roomID,
	})
	if err == nil {
		client.Send <- initial
	}

	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()

	h.logger.Debug("WebSocket client registered", slog.String("room", roomID))
}

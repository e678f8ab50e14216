package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lismoretv/config"
)

// ChannelsHandler serves the static channel directory and per-channel stream
// status.
type ChannelsHandler struct {
	channels map[int]config.Channel
}

// NewChannelsHandler creates a new channels handler.
func NewChannelsHandler(channels map[int]config.Channel) *ChannelsHandler {
	return &ChannelsHandler{channels: channels}
}

// GetChannels returns the channel directory keyed by LCN.
// GET /api/channels
func (h *ChannelsHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.channels)
}

// StreamStatus reports whether a channel's stream is available.
// GET /api/stream-status/{lcn}
func (h *ChannelsHandler) StreamStatus(w http.ResponseWriter, r *http.Request) {
	lcn, err := strconv.Atoi(mux.Vars(r)["lcn"])
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Channel not found")
		return
	}

	channel, ok := h.channels[lcn]
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Channel not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lcn":         lcn,
		"name":        channel.Name,
		"available":   true,
		"stream":      channel.Stream,
		"isAudioOnly": channel.IsAudioOnly,
	})
}

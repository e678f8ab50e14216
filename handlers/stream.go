package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lismoretv/services/relay"
)

const relayChunkSize = 8 * 1024

// StreamHandler proxies relay channel audio through the backend.
type StreamHandler struct {
	relay *relay.Service
}

// NewStreamHandler creates a new stream proxy handler.
func NewStreamHandler(relayService *relay.Service) *StreamHandler {
	return &StreamHandler{relay: relayService}
}

// Proxy relays the channel's upstream audio to the client without buffering
// the whole body. A client disconnect mid-stream just ends the response.
// GET /api/stream-proxy/{lcn}
func (h *StreamHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	lcn, err := strconv.Atoi(mux.Vars(r)["lcn"])
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Audio channel not found")
		return
	}

	stream, err := h.relay.Proxy(r.Context(), lcn)
	if errors.Is(err, relay.ErrUnknownChannel) {
		writeJSONError(w, http.StatusNotFound, "Audio channel not found")
		return
	}
	if err != nil {
		log.Printf("[relay] channel %d upstream error: %v", lcn, err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":   "Stream unavailable",
			"details": err.Error(),
			"lcn":     lcn,
		})
		return
	}
	defer stream.Body.Close()

	w.Header().Set("Content-Type", stream.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Headers", "Range, Content-Type, Accept")
	if stream.ContentLength >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(stream.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, relayChunkSize)

	for {
		n, readErr := stream.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				// Client went away; best-effort proxy, nothing to report.
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) && !errors.Is(readErr, context.Canceled) {
				log.Printf("[relay] channel %d upstream read ended: %v", lcn, readErr)
			}
			return
		}
	}
}

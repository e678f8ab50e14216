package handlers

import (
	"net/http"
	"time"

	"lismoretv/services/guide"
)

// HealthHandler reports server and guide cache status.
type HealthHandler struct {
	guideService *guide.Service
	now          func() time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(guideService *guide.Service) *HealthHandler {
	return &HealthHandler{
		guideService: guideService,
		now:          time.Now,
	}
}

// GetHealth returns the health payload.
// GET /api/health
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := h.guideService.Status()

	var lastLoaded *string
	if status.LastLoaded != nil {
		s := status.LastLoaded.In(h.guideService.Location()).Format(time.RFC3339)
		lastLoaded = &s
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "healthy",
		"timestamp":            h.now().In(h.guideService.Location()).Format(time.RFC3339),
		"tv_guide_last_loaded": lastLoaded,
		"cached_channels":      status.ChannelCount,
		"mode":                 "hybrid_stream_with_proxy",
	})
}

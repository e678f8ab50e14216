package handlers

import (
	"net/http"
	"time"

	"lismoretv/models"
	"lismoretv/services/guide"
)

// GuideHandler serves the TV guide API.
type GuideHandler struct {
	guideService *guide.Service
	now          func() time.Time
}

// NewGuideHandler creates a new guide handler.
func NewGuideHandler(guideService *guide.Service) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
		now:          time.Now,
	}
}

// GetGuide returns the program guide keyed by LCN.
// GET /api/tv-guide
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	programs := h.guideService.Programs(r.Context())
	now := h.now().In(h.guideService.Location())

	payload := make(map[int][]models.ProgramView, len(programs))
	for lcn, list := range programs {
		views := make([]models.ProgramView, len(list))
		for i, p := range list {
			views[i] = p.View(now)
		}
		payload[lcn] = views
	}

	writeJSON(w, http.StatusOK, payload)
}

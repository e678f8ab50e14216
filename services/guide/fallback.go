package guide

import (
	"fmt"
	"time"

	"lismoretv/models"
)

// Channel LCNs known to carry video content; the fallback guide covers these.
var fallbackChannels = []int{
	2, 20, 21, 22, 23, 24,
	3, 30, 31, 32, 33, 34, 35, 36,
	5, 50, 51, 52, 53, 54, 56,
	6, 60, 62, 64, 65, 66, 67, 68,
	8, 80, 81, 82, 83, 84, 85, 88,
}

type programTemplate struct {
	title       string
	description string
	category    string
}

var fallbackTemplates = []programTemplate{
	{"Morning News", "Latest news and weather updates", "News"},
	{"Breakfast TV", "Morning entertainment and lifestyle", "Entertainment"},
	{"Kids Programs", "Educational content for children", "Children"},
	{"Midday Movie", "Classic film presentation", "Movies"},
	{"Afternoon Talk", "Discussion and interview program", "Talk"},
	{"Game Show", "Interactive quiz and prizes", "Game Show"},
	{"Documentary", "Educational documentary series", "Documentary"},
	{"Evening News", "Comprehensive news coverage", "News"},
	{"Drama Series", "Popular drama television series", "Drama"},
	{"Comedy Show", "Light entertainment and comedy", "Comedy"},
	{"Late Night", "Late night entertainment", "Entertainment"},
	{"Sports Tonight", "Sports news and highlights", "Sports"},
}

// generateFallback builds synthetic programming when no guide source is
// usable: 12 sequential one-hour programs per video channel, starting two
// hours before the current hour boundary. Output is deterministic for a
// given "now" and satisfies the same invariants as parsed data.
func (s *Service) generateFallback(now time.Time) map[int][]models.Program {
	local := now.In(s.loc)
	base := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, s.loc).
		Add(-2 * time.Hour)

	programs := make(map[int][]models.Program, len(fallbackChannels))
	for _, lcn := range fallbackChannels {
		list := make([]models.Program, 0, 12)
		for i := 0; i < 12; i++ {
			start := base.Add(time.Duration(i) * time.Hour)
			stop := start.Add(time.Hour)

			tmpl := fallbackTemplates[(lcn+i)%len(fallbackTemplates)]

			var prefix string
			switch {
			case i < 6:
				prefix = "Morning"
			case i < 18:
				prefix = "Afternoon"
			default:
				prefix = "Evening"
			}

			list = append(list, models.Program{
				Title:       fmt.Sprintf("%s %s #%d", prefix, tmpl.title, i+1),
				Description: fmt.Sprintf("%s - Episode %d", tmpl.description, i+1),
				Category:    tmpl.category,
				Start:       start,
				Stop:        stop,
			})
		}
		programs[lcn] = list
	}

	return programs
}

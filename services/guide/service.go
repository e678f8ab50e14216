package guide

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"lismoretv/config"
	"lismoretv/models"
)

const (
	userAgent           = "SmartTV/1.0"
	maxGuideSize        = 50 * 1024 * 1024 // 50 MB max per XMLTV document
	defaultCacheTTL     = time.Hour
	defaultFetchTimeout = 15 * time.Second
)

// SourceOutcome classifies what happened when a guide mirror was tried.
type SourceOutcome string

const (
	SourceOK           SourceOutcome = "ok"
	SourceNetworkError SourceOutcome = "network-error"
	SourceBadStatus    SourceOutcome = "bad-status"
	SourceParseError   SourceOutcome = "parse-error"
	SourceEmpty        SourceOutcome = "empty"
)

// SourceResult records the outcome of one mirror during a refresh attempt.
type SourceResult struct {
	URL     string        `json:"url"`
	Outcome SourceOutcome `json:"outcome"`
	Detail  string        `json:"detail,omitempty"`
}

// Status reports cache state for the health endpoint and tests.
type Status struct {
	LastLoaded   *time.Time     `json:"lastLoaded,omitempty"`
	ChannelCount int            `json:"channelCount"`
	Fallback     bool           `json:"fallback"`
	Sources      []SourceResult `json:"sources,omitempty"`
}

// Service fetches, parses, and caches the TV guide. The whole guide is one
// cache entry: while fresh it is served as-is, and a refresh replaces the map
// wholesale so concurrent readers never observe a half-populated guide.
//
// Concurrent callers hitting an expired cache may each attempt a refresh;
// duplicate fetches are accepted rather than serialized, and every successful
// swap installs a complete guide.
type Service struct {
	sources []string
	client  *http.Client
	loc     *time.Location
	ttl     time.Duration
	now     func() time.Time

	mu          sync.RWMutex
	programs    map[int][]models.Program
	lastLoaded  time.Time
	fallback    bool
	lastAttempt []SourceResult
}

// NewService creates a guide service from configuration.
func NewService(cfg config.GuideSettings) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load guide timezone %q: %w", cfg.Timezone, err)
	}

	ttl := defaultCacheTTL
	if cfg.CacheTTLMinutes > 0 {
		ttl = time.Duration(cfg.CacheTTLMinutes) * time.Minute
	}

	// A zero timeout would mean unbounded fetches, so default it too.
	timeout := defaultFetchTimeout
	if cfg.FetchTimeoutSec > 0 {
		timeout = time.Duration(cfg.FetchTimeoutSec) * time.Second
	}

	return &Service{
		sources: cfg.Sources,
		client: &http.Client{
			Timeout: timeout,
		},
		loc: loc,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Programs returns the guide keyed by LCN. Cached data is served while fresh;
// otherwise the mirrors are tried in priority order and the first usable
// document replaces the cache. When every source fails, a synthetic fallback
// guide is returned without marking a successful load, so the next call tries
// the mirrors again.
func (s *Service) Programs(ctx context.Context) map[int][]models.Program {
	now := s.now()

	s.mu.RLock()
	if !s.lastLoaded.IsZero() && len(s.programs) > 0 && now.Sub(s.lastLoaded) < s.ttl {
		cached := s.programs
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	results := make([]SourceResult, 0, len(s.sources))
	for _, src := range s.sources {
		programs, res := s.fetchSource(ctx, src)
		results = append(results, res)
		if res.Outcome != SourceOK {
			log.Printf("[guide] source %s failed (%s): %s", src, res.Outcome, res.Detail)
			continue
		}

		s.mu.Lock()
		s.programs = programs
		s.lastLoaded = now
		s.fallback = false
		s.lastAttempt = results
		s.mu.Unlock()

		log.Printf("[guide] loaded %d channels from %s", len(programs), src)
		return programs
	}

	log.Printf("[guide] all %d sources failed, using fallback programs", len(s.sources))
	s.mu.Lock()
	s.fallback = true
	s.lastAttempt = results
	s.mu.Unlock()

	return s.generateFallback(now)
}

// Status returns cache state: when the last real load happened (nil if
// never), how many channels it held, whether the last read fell back to
// synthetic data, and the per-source results of the last refresh attempt.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		ChannelCount: len(s.programs),
		Fallback:     s.fallback,
		Sources:      s.lastAttempt,
	}
	if !s.lastLoaded.IsZero() {
		t := s.lastLoaded
		st.LastLoaded = &t
	}
	return st
}

// Location returns the reference timezone the guide is expressed in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// fetchSource fetches and parses one mirror. Any failure is captured in the
// result rather than returned as an error: the caller just moves on to the
// next source.
func (s *Service) fetchSource(ctx context.Context, srcURL string) (map[int][]models.Program, SourceResult) {
	res := SourceResult{URL: srcURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		res.Outcome = SourceNetworkError
		res.Detail = err.Error()
		return nil, res
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		res.Outcome = SourceNetworkError
		res.Detail = err.Error()
		return nil, res
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Outcome = SourceBadStatus
		res.Detail = resp.Status
		return nil, res
	}

	programs, err := s.parseGuide(io.LimitReader(resp.Body, maxGuideSize))
	if err != nil {
		res.Outcome = SourceParseError
		res.Detail = err.Error()
		return nil, res
	}

	if !hasPrograms(programs) {
		res.Outcome = SourceEmpty
		res.Detail = "no channels with programs"
		return nil, res
	}

	res.Outcome = SourceOK
	return programs, res
}

func hasPrograms(programs map[int][]models.Program) bool {
	for _, list := range programs {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

// XMLTV structures for parsing
type xmltvDocument struct {
	XMLName    xml.Name         `xml:"tv"`
	Channels   []xmltvChannel   `xml:"channel"`
	Programmes []xmltvProgramme `xml:"programme"`
}

type xmltvChannel struct {
	ID  string `xml:"id,attr"`
	LCN string `xml:"lcn"`
}

type xmltvProgramme struct {
	Start    string `xml:"start,attr"`
	Stop     string `xml:"stop,attr"`
	Channel  string `xml:"channel,attr"`
	Title    string `xml:"title"`
	Desc     string `xml:"desc"`
	Category string `xml:"category"`
}

// parseGuide parses an XMLTV document into programs keyed by LCN. Channels
// without an integer <lcn> are skipped; programmes referencing an unknown
// channel id, missing a parseable start or stop, or with stop <= start are
// dropped. Each channel's list is sorted by start time, ties keeping
// document order.
func (s *Service) parseGuide(r io.Reader) (map[int][]models.Program, error) {
	var doc xmltvDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse XML: %w", err)
	}

	lcnByID := make(map[string]int, len(doc.Channels))
	for _, ch := range doc.Channels {
		lcn, err := strconv.Atoi(strings.TrimSpace(ch.LCN))
		if err != nil {
			continue
		}
		lcnByID[ch.ID] = lcn
	}

	programs := make(map[int][]models.Program)
	for _, prog := range doc.Programmes {
		lcn, ok := lcnByID[prog.Channel]
		if !ok {
			continue
		}

		start, startKind := ParseTimestamp(prog.Start, s.loc)
		stop, stopKind := ParseTimestamp(prog.Stop, s.loc)
		if startKind == TimestampInvalid || stopKind == TimestampInvalid {
			continue
		}
		if !stop.After(start) {
			continue
		}

		title := strings.TrimSpace(prog.Title)
		if title == "" {
			title = "No Title"
		}
		category := strings.TrimSpace(prog.Category)
		if category == "" {
			category = "General"
		}

		programs[lcn] = append(programs[lcn], models.Program{
			Title:       title,
			Description: strings.TrimSpace(prog.Desc),
			Category:    category,
			Start:       start,
			Stop:        stop,
		})
	}

	for lcn := range programs {
		list := programs[lcn]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Start.Before(list[j].Start)
		})
	}

	return programs, nil
}

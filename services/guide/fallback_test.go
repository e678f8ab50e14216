package guide

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFallbackShape(t *testing.T) {
	loc := sydney(t)
	svc := &Service{loc: loc}
	now := time.Date(2024, 8, 1, 14, 35, 12, 0, loc)

	programs := svc.generateFallback(now)
	require.Len(t, programs, len(fallbackChannels))

	wantBase := time.Date(2024, 8, 1, 12, 0, 0, 0, loc)
	for lcn, list := range programs {
		require.Len(t, list, 12, "channel %d", lcn)
		assert.True(t, list[0].Start.Equal(wantBase), "channel %d base", lcn)

		for i, p := range list {
			assert.Equal(t, 60, p.DurationMins(), "channel %d program %d", lcn, i)
			if i > 0 {
				assert.True(t, p.Start.Equal(list[i-1].Stop),
					"channel %d: program %d does not abut its predecessor", lcn, i)
			}
		}

		// First six slots carry the morning prefix, the rest afternoon.
		assert.True(t, strings.HasPrefix(list[0].Title, "Morning "))
		assert.True(t, strings.HasPrefix(list[5].Title, "Morning "))
		assert.True(t, strings.HasPrefix(list[6].Title, "Afternoon "))
		assert.True(t, strings.HasPrefix(list[11].Title, "Afternoon "))
	}
}

func TestGenerateFallbackDeterministic(t *testing.T) {
	loc := sydney(t)
	svc := &Service{loc: loc}
	now := time.Date(2024, 8, 1, 9, 15, 0, 0, loc)

	a := svc.generateFallback(now)
	b := svc.generateFallback(now)
	assert.Equal(t, a, b)
}

func TestProgramsFallbackDoesNotMarkLoaded(t *testing.T) {
	fetches := 0
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		fetches++
		return nil, errors.New("no route to host")
	})

	t0 := time.Date(2024, 8, 1, 10, 0, 0, 0, sydney(t))
	sources := []string{"http://a.example/guide.xml", "http://b.example/guide.xml"}
	svc := newTestService(t, sources, rt, t0)

	programs := svc.Programs(context.Background())
	require.Len(t, programs, len(fallbackChannels))
	assert.Equal(t, len(sources), fetches)

	status := svc.Status()
	assert.True(t, status.Fallback)
	assert.Nil(t, status.LastLoaded, "fallback data must not count as a load")
	assert.Zero(t, status.ChannelCount)

	// Fallback is never cached: the next call tries every mirror again.
	svc.Programs(context.Background())
	assert.Equal(t, 2*len(sources), fetches)
}

package external

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssBody(channelTitle string, items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString(`<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/"><channel>`)
	b.WriteString("<title>" + channelTitle + "</title>")
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func simpleItem(n int) string {
	return fmt.Sprintf(
		`<item><title>Story %d</title><link>https://example.com/%d</link><description>Summary %d</description><pubDate>Mon, 24 Aug 2026 10:%02d:00 GMT</pubDate></item>`,
		n, n, n, n%60)
}

func serveFeeds(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestNews_CapsPerFeedAndOverall(t *testing.T) {
	// Three feeds with 25 entries each: 20 taken per feed, 50 overall.
	items := make([]string, 25)
	for i := range items {
		items[i] = simpleItem(i)
	}
	body := rssBody("Feed", items...)

	srv := serveFeeds(t, map[string]string{"/a": body, "/b": body, "/c": body})
	s := NewNewsService([]string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}, nil)
	s.httpClient = srv.Client()

	got := s.LatestNews(context.Background())

	assert.Len(t, got, 50)
	// Feed-then-entry source order: the first 20 items come from feed /a.
	assert.Equal(t, "Story 0", got[0].Title)
	assert.Equal(t, "Story 19", got[19].Title)
	assert.Equal(t, "Story 0", got[20].Title)
}

func TestLatestNews_FailedFeedIsSkipped(t *testing.T) {
	srv := serveFeeds(t, map[string]string{
		"/ok":     rssBody("Good Feed", simpleItem(1), simpleItem(2)),
		"/broken": `this is not xml <<<`,
	})
	s := NewNewsService([]string{
		srv.URL + "/missing", // 404
		srv.URL + "/broken",  // parse failure
		srv.URL + "/ok",
	}, nil)
	s.httpClient = srv.Client()

	got := s.LatestNews(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "Good Feed", got[0].Source)
	assert.Equal(t, "Story 1", got[0].Title)
}

func TestLatestNews_NeverNil(t *testing.T) {
	s := NewNewsService(nil, nil)
	got := s.LatestNews(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeEntry_PublishedFallsBackToUpdated(t *testing.T) {
	entry := rssEntry{Title: "t", Updated: "2026-08-24T10:00:00Z"}
	item := normalizeEntry(entry, "Feed")
	assert.Equal(t, "2026-08-24T10:00:00Z", item.Published)

	entry.PubDate = "Mon, 24 Aug 2026 10:00:00 GMT"
	item = normalizeEntry(entry, "Feed")
	assert.Equal(t, "Mon, 24 Aug 2026 10:00:00 GMT", item.Published)
}

func TestNormalizeEntry_ImageSelection(t *testing.T) {
	// media:thumbnail wins over media:content; neither means null.
	entry := rssEntry{
		Thumbnails: []mediaRef{{URL: "https://img.example.com/thumb.jpg"}},
		Contents:   []mediaRef{{URL: "https://img.example.com/full.jpg"}},
	}
	item := normalizeEntry(entry, "Feed")
	require.NotNil(t, item.Image)
	assert.Equal(t, "https://img.example.com/thumb.jpg", *item.Image)

	entry.Thumbnails = nil
	item = normalizeEntry(entry, "Feed")
	require.NotNil(t, item.Image)
	assert.Equal(t, "https://img.example.com/full.jpg", *item.Image)

	entry.Contents = nil
	item = normalizeEntry(entry, "Feed")
	assert.Nil(t, item.Image)
}

func TestLatestNews_ParsesMediaThumbnailAndSourceFallback(t *testing.T) {
	body := rssBody("",
		`<item><title>With media</title><link>https://example.com/m</link>`+
			`<media:thumbnail url="https://img.example.com/t.jpg"/></item>`)

	srv := serveFeeds(t, map[string]string{"/feed": body})
	s := NewNewsService([]string{srv.URL + "/feed"}, nil)
	s.httpClient = srv.Client()

	got := s.LatestNews(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "RSS", got[0].Source)
	require.NotNil(t, got[0].Image)
	assert.Equal(t, "https://img.example.com/t.jpg", *got[0].Image)
}

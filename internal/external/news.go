// Package external provides clients for the fixed public sources that do not
// participate in active-provider selection: RSS news feeds, the ICC rankings
// endpoint, and the X search API.
package external

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	newsPerFeedLimit = 20
	newsTotalLimit   = 50
	newsTimeout      = 15 * time.Second
)

// ---------------------------------------------------------------------------
// NewsItem — normalized article shape
// ---------------------------------------------------------------------------

// NewsItem is a normalized news entry from any configured feed.
type NewsItem struct {
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Summary   string  `json:"summary"`
	Published string  `json:"published"`
	Source    string  `json:"source"`
	Image     *string `json:"image"`
}

// ---------------------------------------------------------------------------
// RSS document structure
// ---------------------------------------------------------------------------

type rssFeed struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Title string     `xml:"title"`
		Items []rssEntry `xml:"item"`
	} `xml:"channel"`
}

type rssEntry struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	// Atom-style timestamp some feeds carry instead of pubDate.
	Updated    string     `xml:"updated"`
	Thumbnails []mediaRef `xml:"http://search.yahoo.com/mrss/ thumbnail"`
	Contents   []mediaRef `xml:"http://search.yahoo.com/mrss/ content"`
}

type mediaRef struct {
	URL string `xml:"url,attr"`
}

// ---------------------------------------------------------------------------
// NewsService — multi-feed RSS client
// ---------------------------------------------------------------------------

// NewsService fetches and normalizes entries from a fixed list of RSS feeds.
type NewsService struct {
	feeds      []string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNewsService creates a news service over the given feed URLs.
func NewNewsService(feeds []string, logger *slog.Logger) *NewsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsService{
		feeds:      feeds,
		httpClient: &http.Client{Timeout: newsTimeout},
		logger:     logger,
	}
}

// LatestNews fetches every configured feed in source order, takes the first
// 20 entries per feed, and returns at most 50 items overall. A feed that
// fails to fetch or parse is skipped, never surfaced — partial results are
// the norm. The returned slice is never nil.
func (s *NewsService) LatestNews(ctx context.Context) []NewsItem {
	items := make([]NewsItem, 0, newsTotalLimit)

	for _, src := range s.feeds {
		feed, err := s.fetchFeed(ctx, src)
		if err != nil {
			s.logger.Warn("news feed skipped", "feed", src, "error", err)
			continue
		}

		source := feed.Channel.Title
		if source == "" {
			source = "RSS"
		}

		entries := feed.Channel.Items
		if len(entries) > newsPerFeedLimit {
			entries = entries[:newsPerFeedLimit]
		}
		for _, e := range entries {
			items = append(items, normalizeEntry(e, source))
		}
	}

	if len(items) > newsTotalLimit {
		items = items[:newsTotalLimit]
	}
	return items
}

func (s *NewsService) fetchFeed(ctx context.Context, u string) (*rssFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CricketDataBot/1.0)")
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// statusError reports a non-success feed response.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.status)
}

// normalizeEntry maps one feed entry to the canonical NewsItem. Published
// falls back to the updated timestamp; the image is the first
// media:thumbnail, else the first media:content.
func normalizeEntry(e rssEntry, source string) NewsItem {
	published := e.PubDate
	if published == "" {
		published = e.Updated
	}

	var image *string
	if len(e.Thumbnails) > 0 && e.Thumbnails[0].URL != "" {
		image = &e.Thumbnails[0].URL
	} else if len(e.Contents) > 0 && e.Contents[0].URL != "" {
		image = &e.Contents[0].URL
	}

	return NewsItem{
		Title:     e.Title,
		Link:      e.Link,
		Summary:   e.Description,
		Published: published,
		Source:    source,
		Image:     image,
	}
}

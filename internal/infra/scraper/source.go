// Package scraper implements the video metadata sources: the public watch page,
// the Data API and the two embed endpoints. Every source shares one bounded
// fetch path and reports failures as an empty result.
package scraper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"randomyt/internal/config"
	"randomyt/internal/usecase/metadata"

	"github.com/tidwall/gjson"
)

// Default endpoints. "{id}" is replaced with the query-escaped video id.
const (
	DefaultWatchPageURL = "https://www.youtube.com/watch?v={id}"
	DefaultDataAPIURL   = "https://www.googleapis.com/youtube/v3"
	DefaultNoEmbedURL   = "https://noembed.com/embed?url=https://www.youtube.com/watch?v={id}"
	DefaultOEmbedURL    = "https://www.youtube.com/oembed?url=https://www.youtube.com/watch?v={id}&format=json"
)

var (
	watchPagePaths = Paths{
		Title:      "videoDetails.title",
		UploadDate: "microformat.playerMicroformatRenderer.uploadDate",
		Tags:       "videoDetails.keywords",
		ViewCount:  "videoDetails.viewCount",
	}
	dataAPIPaths = Paths{
		Title:      "items.0.snippet.title",
		UploadDate: "items.0.snippet.publishedAt",
		Tags:       "items.0.snippet.tags",
		ViewCount:  "items.0.statistics.viewCount",
	}
	titleOnlyPaths = Paths{Title: "title"}
)

var errNotJSON = errors.New("response is not valid JSON")

// Options configures a Source.
type Options struct {
	// URL overrides the endpoint template. For the Data API it is the API base URL.
	URL       string
	Timeout   time.Duration
	UserAgent string
	// APIKey is required by the Data API source; without it the source is a no-op.
	APIKey string

	Client  *http.Client
	Limiter *RateLimiter
	Logger  *slog.Logger
}

// Source is a metadata.Source backed by one HTTP endpoint.
// It is safe for concurrent use.
type Source struct {
	name     string
	fetcher  *fetcher
	buildURL func(videoID string) string
	parse    func(body []byte) (metadata.RawResult, error)
	logger   *slog.Logger
}

var _ metadata.Source = (*Source)(nil)

// NewWatchPage returns the source reading the player response embedded in the public watch page.
func NewWatchPage(opts Options) *Source {
	tmpl := orDefault(opts.URL, DefaultWatchPageURL)
	return newSource(config.SourceWatchPage, opts, templateURL(tmpl), parseWatchPage)
}

// NewDataAPI returns the source querying the videos endpoint of the Data API.
func NewDataAPI(opts Options) *Source {
	base := strings.TrimRight(orDefault(opts.URL, DefaultDataAPIURL), "/")
	key := opts.APIKey
	build := func(videoID string) string {
		if key == "" {
			return ""
		}
		q := url.Values{}
		q.Set("part", "snippet,statistics")
		q.Set("id", videoID)
		q.Set("key", key)
		return base + "/videos?" + q.Encode()
	}
	return newSource(config.SourceDataAPI, opts, build, parseJSON(dataAPIPaths))
}

// NewNoEmbed returns the title-only source backed by noembed.com.
func NewNoEmbed(opts Options) *Source {
	tmpl := orDefault(opts.URL, DefaultNoEmbedURL)
	return newSource(config.SourceNoEmbed, opts, templateURL(tmpl), parseJSON(titleOnlyPaths))
}

// NewOEmbed returns the title-only source backed by the oEmbed endpoint.
func NewOEmbed(opts Options) *Source {
	tmpl := orDefault(opts.URL, DefaultOEmbedURL)
	return newSource(config.SourceOEmbed, opts, templateURL(tmpl), parseJSON(titleOnlyPaths))
}

func newSource(name string, opts Options, build func(string) string, parse func([]byte) (metadata.RawResult, error)) *Source {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		name:     name,
		fetcher:  newFetcher(name, opts.Client, opts.Limiter, opts.Timeout, opts.UserAgent),
		buildURL: build,
		parse:    parse,
		logger:   logger.With(slog.String("source", name)),
	}
}

// Name returns the source name used in logs, metrics and the resolution trace.
func (s *Source) Name() string { return s.name }

// BreakerState reports the state of the source's circuit breaker.
func (s *Source) BreakerState() string { return s.fetcher.breaker.State() }

// Fetch retrieves metadata for videoID. Failures of any kind yield an empty result.
func (s *Source) Fetch(ctx context.Context, videoID string) (res metadata.RawResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("metadata source panicked",
				slog.String("video_id", videoID),
				slog.Any("panic", r))
			res = metadata.RawResult{}
		}
	}()

	target := s.buildURL(videoID)
	if target == "" {
		s.logger.Debug("metadata source not configured, skipping", slog.String("video_id", videoID))
		return metadata.RawResult{}
	}

	body, err := s.fetcher.get(ctx, target)
	if err != nil {
		s.logger.Debug("metadata source unavailable",
			slog.String("video_id", videoID),
			slog.Any("error", err))
		return metadata.RawResult{}
	}

	res, err = s.parse(body)
	if err != nil {
		s.logger.Debug("metadata source payload rejected",
			slog.String("video_id", videoID),
			slog.Any("error", err))
		return metadata.RawResult{}
	}
	return res
}

// parseWatchPage locates the ytInitialPlayerResponse assignment in the page and
// extracts fields from the decoded player response.
func parseWatchPage(body []byte) (metadata.RawResult, error) {
	raw, err := extractPlayerResponse(body)
	if err != nil {
		return metadata.RawResult{}, err
	}
	return watchPagePaths.Extract(gjson.ParseBytes(raw)), nil
}

func parseJSON(paths Paths) func([]byte) (metadata.RawResult, error) {
	return func(body []byte) (metadata.RawResult, error) {
		if !gjson.ValidBytes(body) {
			return metadata.RawResult{}, errNotJSON
		}
		return paths.Extract(gjson.ParseBytes(body)), nil
	}
}

func templateURL(tmpl string) func(string) string {
	return func(videoID string) string {
		return strings.ReplaceAll(tmpl, "{id}", url.QueryEscape(videoID))
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

package scraper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const playerResponseMarker = "ytInitialPlayerResponse"

var errPlayerResponseNotFound = errors.New("ytInitialPlayerResponse not found in page")

// extractPlayerResponse returns the JSON object assigned to ytInitialPlayerResponse
// in one of the page's inline scripts. Assignments of anything but an object
// (the page sometimes declares the variable as null first) are skipped.
func extractPlayerResponse(body []byte) (json.RawMessage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var (
		found     json.RawMessage
		lastError error
	)
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, playerResponseMarker) {
			return true
		}
		raw, err := objectAfterMarker(text)
		if err != nil {
			lastError = err
			return true
		}
		found = raw
		return false
	})

	if found != nil {
		return found, nil
	}
	if lastError != nil {
		return nil, lastError
	}
	return nil, errPlayerResponseNotFound
}

// objectAfterMarker scans every occurrence of the marker in a script and decodes
// the first object literal assigned to it. The decoder stops at the end of the
// object, so the trailing JavaScript is ignored.
func objectAfterMarker(script string) (json.RawMessage, error) {
	rest := script
	for {
		idx := strings.Index(rest, playerResponseMarker)
		if idx < 0 {
			return nil, errPlayerResponseNotFound
		}
		rest = rest[idx+len(playerResponseMarker):]

		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return nil, errPlayerResponseNotFound
		}
		// Only whitespace and the closing of window["..."] may sit between the name and "=".
		if strings.Trim(rest[:eq], " \t\r\n\"']") != "" {
			continue
		}
		value := strings.TrimLeft(rest[eq+1:], " \t\r\n")
		if !strings.HasPrefix(value, "{") {
			continue
		}

		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(value)).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode player response: %w", err)
		}
		return raw, nil
	}
}

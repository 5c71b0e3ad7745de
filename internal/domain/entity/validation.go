package entity

import "regexp"

// videoIDPattern is the format of a YouTube video identifier.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ValidateVideoID reports whether id is a syntactically valid YouTube video identifier:
// exactly 11 characters drawn from letters, digits, '-' and '_'.
// Request validation and Video.Validate both go through this function.
func ValidateVideoID(id string) bool {
	return videoIDPattern.MatchString(id)
}

package respond

import (
	"regexp"
)

var (
	// Google API keys, as used by the Data API source
	googleKeyPattern = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// key=... query parameters in URLs quoted by net/http errors
	keyParamPattern = regexp.MustCompile(`([?&]key=)[^&\s"]+`)

	// database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = googleKeyPattern.ReplaceAllString(msg, "AIza****")
	msg = keyParamPattern.ReplaceAllString(msg, "${1}****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}

package uploader

import (
	"fmt"
	"strings"

	"github.com/mkravets/uploadhub/internal/sizefmt"
)

// Policy is the validation gate applied to every candidate file.
//
// MaxSizeBytes of 0 means no size limit. An empty AllowedTypePatterns list
// accepts all types. A pattern starting with a dot (".txt") is compared
// case-insensitively against the candidate's name suffix; any other pattern
// is treated as a MIME type, optionally with a wildcard subtype ("image/*"),
// and matched against the candidate's declared MIME type.
type Policy struct {
	MaxSizeBytes        int64
	AllowedTypePatterns []string
}

// Validate decides whether a candidate file is acceptable under the policy.
// It returns nil on acceptance, or an error wrapping ErrSizeExceeded or
// ErrTypeNotAllowed. Pure: no side effects, deterministic.
func Validate(c RawFile, p Policy) error {
	if p.MaxSizeBytes > 0 && c.Size > p.MaxSizeBytes {
		return fmt.Errorf("%w: %s is over the %s limit",
			ErrSizeExceeded, sizefmt.Format(c.Size), sizefmt.Format(p.MaxSizeBytes))
	}

	if len(p.AllowedTypePatterns) == 0 {
		return nil
	}

	for _, pat := range p.AllowedTypePatterns {
		if matchesPattern(c, pat) {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (%s)", ErrTypeNotAllowed, c.Name, c.MimeType)
}

func matchesPattern(c RawFile, pat string) bool {
	pat = strings.TrimSpace(pat)
	if pat == "" {
		return false
	}

	// extension form, e.g. ".txt"
	if strings.HasPrefix(pat, ".") {
		return strings.HasSuffix(strings.ToLower(c.Name), strings.ToLower(pat))
	}

	return matchesMime(c.MimeType, pat)
}

func matchesMime(mimeType, pat string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	pat = strings.ToLower(pat)

	if pat == "*" || pat == "*/*" {
		return true
	}

	// wildcard subtype, e.g. "image/*" matches "image/png"
	if prefix, ok := strings.CutSuffix(pat, "/*"); ok {
		return strings.HasPrefix(mt, prefix+"/")
	}

	return mt == pat
}

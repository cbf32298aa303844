package service

import (
	"fmt"
	"regexp"
)

// LinkValidator checks that image links point at the external asset host the
// storefront uploads to. The service never touches image bytes; it only
// accepts delivery URLs shaped like the host's secure upload URLs.
type LinkValidator struct {
	re *regexp.Regexp
}

// NewLinkValidator builds a validator for the given asset cloud name.
func NewLinkValidator(cloudName string) *LinkValidator {
	pattern := fmt.Sprintf(
		`^https://res\.cloudinary\.com/%s/image/upload/[a-zA-Z0-9]+/[a-zA-Z0-9\-_.]+\.(jpg|jpeg|png|gif|bmp|webp)$`,
		regexp.QuoteMeta(cloudName),
	)
	return &LinkValidator{re: regexp.MustCompile(pattern)}
}

// Valid reports whether link is an acceptable asset URL.
func (v *LinkValidator) Valid(link string) bool {
	return v.re.MatchString(link)
}

// Package sanitize strips script-injection payloads from user-authored text
// before it is written to a response.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var ugc = bluemonday.UGCPolicy()

// HTML removes markup that is not safe for user-generated content. Benign
// formatting tags (strong, em, img with safe attributes) survive; script
// elements and event handlers do not.
func HTML(s string) string {
	return ugc.Sanitize(s)
}

package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// defaultMarkupPolicy returns the shared sanitizer applied to Markup
// components when the caller does not supply one. UGCPolicy keeps common
// formatting elements and links while stripping scripts and event handlers.
func defaultMarkupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy
}

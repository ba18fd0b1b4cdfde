// Package httputil fetches remote iCalendar feeds.
//
// A day file path that starts with http:// or https:// is downloaded
// instead of read from disk. Downloads go through [Client], which
//
//   - caches feed bodies in the pipeline cache for [cache.TTLFeed]
//   - retries network failures and 5xx responses with exponential backoff
//   - caps the body size so a misbehaving server cannot exhaust memory
//
// Usage:
//
//	client := httputil.NewClient(c, cache.TTLFeed)
//	data, err := client.Fetch(ctx, "https://example.com/team.ics", false)
//
// Errors carry NETWORK_ERROR, NOT_FOUND or TIMEOUT codes from package errors.
package httputil

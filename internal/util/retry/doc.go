// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max attempts,
// initial delay, multiplier and maximum delay. It wraps each page fetch of the
// Cloudflare Pages deployment listing, where rate limiting is most likely.
package retry

// Package feed reads the ordered match feed exported by the schedule scraper.
package feed

// Option applies a configuration option to the Reader.
type Option func(*Reader)

// WithKeepUnplayed makes the reader fail on scheduled games that have no
// score yet instead of dropping them.
func WithKeepUnplayed() Option {
	return func(r *Reader) {
		r.dropUnplayed = false
	}
}

// WithDateLayouts replaces the accepted Date column layouts.
func WithDateLayouts(layouts ...string) Option {
	return func(r *Reader) {
		if len(layouts) > 0 {
			r.dateLayouts = layouts
		}
	}
}

// WithDedupe drops rows describing a game already read earlier in the
// same feed, keeping the first occurrence. Rows with neither a box score
// link nor a date cannot be told apart and are always kept.
func WithDedupe() Option {
	return func(r *Reader) {
		r.dedupe = true
	}
}

// Package fxaudit classifies spreadsheet formula complexity.
package fxaudit

// Options configures analysis behavior.
type Options struct {
	// IncludeValues specifies whether records carry the cached cell value.
	// If nil, defaults to true.
	IncludeValues *bool
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeValues returns whether records carry cached cell values.
func (o Options) ShouldIncludeValues() bool {
	if o.IncludeValues != nil {
		return *o.IncludeValues
	}
	return true
}

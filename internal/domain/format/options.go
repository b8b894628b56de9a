package format

// Option applies a configuration option to the Formatter.
type Option func(*Formatter)

// WithLinks enables or disables markdown links around team names.
func WithLinks(enabled bool) Option {
	return func(f *Formatter) {
		f.useLinks = enabled
	}
}

// WithPoints enables or disables the points suffix after team names.
func WithPoints(enabled bool) Option {
	return func(f *Formatter) {
		f.includePoints = enabled
	}
}

// WithTeamPageURL sets the printf template used to build team detail
// page links. It must contain exactly one %d verb for the team id.
func WithTeamPageURL(template string) Option {
	return func(f *Formatter) {
		if template != "" {
			f.teamPageURL = template
		}
	}
}

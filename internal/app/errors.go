package service

import "errors"

// Sentinel kinds for run errors.
var (
	ErrMissingDependency = errors.New("service dependency not configured")
	ErrNoCountry         = errors.New("team info did not contain a country")
)

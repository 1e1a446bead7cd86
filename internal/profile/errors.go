package profile

import "errors"

var (
	ErrInvalidTheme    = errors.New("theme must be light or dark")
	ErrInvalidFontSize = errors.New("font size must be small, medium or large")
	ErrInvalidAge      = errors.New("age must be between 0 and 150")
)

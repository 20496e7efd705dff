package models

import "errors"

var (
	// ErrInvalidMoment marks user input outside its declared ranges.
	ErrInvalidMoment = errors.New("invalid calendar moment")
	// ErrInvalidGender marks an unrecognised gender label.
	ErrInvalidGender = errors.New("invalid gender")
	// ErrInvalidLunarDate marks collaborator output outside its declared ranges.
	ErrInvalidLunarDate = errors.New("invalid lunar date")
	// ErrLunarUnavailable marks a failed call to a lunar-conversion provider.
	ErrLunarUnavailable = errors.New("lunar conversion unavailable")
)

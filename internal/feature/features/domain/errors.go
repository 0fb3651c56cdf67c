// Package domain defines the domain errors for the features feature.
package domain

import "errors"

var (
	// ErrFeatureExists is returned when a (ticker, name) pair is already registered.
	ErrFeatureExists = errors.New("feature already exists")

	// ErrFeatureNotFound is returned when no feature matches the lookup.
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrUnknownTicker is returned when the referenced ticker id is not registered.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrUnknownFeature is returned when the referenced feature id is not registered.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrValueConflict is returned when a (feature, time) point is already stored.
	ErrValueConflict = errors.New("feature value already recorded")

	// ErrDayAlreadyComplete is returned when a day's completeness marker already exists.
	ErrDayAlreadyComplete = errors.New("day already marked complete")
)

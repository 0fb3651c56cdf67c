// Package domain defines the domain errors for the auth feature.
package domain

import "errors"

// ErrInvalidCredentials is returned for any failed login attempt. It is
// deliberately generic so a caller cannot probe configuration state.
var ErrInvalidCredentials = errors.New("invalid credentials")

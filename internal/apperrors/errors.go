package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorage indicates a failure in the underlying record store.
var ErrStorage = errors.New("storage error")

// ErrCapability indicates that a device capability call was rejected or failed.
var ErrCapability = errors.New("capability error")

// ErrProtocol indicates a malformed or undecodable bridge message.
var ErrProtocol = errors.New("protocol error")

// ErrInvalidTime indicates a reminder timestamp that is non-finite, in the
// past, or inside the minimum scheduling lead.
var ErrInvalidTime = errors.New("invalid reminder time")

package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAnalysisPending indicates a free-text analysis is already in flight for
// this session and re-submission is blocked until it settles.
var ErrAnalysisPending = errors.New("analysis already in progress")

// ErrNoActiveReview indicates an exchange operation that requires a selected
// nearby request was called without one.
var ErrNoActiveReview = errors.New("no nearby request under review")

// ErrNoParsedRequest indicates a broadcast was attempted before a free-text
// request was successfully parsed.
var ErrNoParsedRequest = errors.New("no parsed request to broadcast")

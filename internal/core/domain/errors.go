package domain

import "errors"

// ErrInvalidCredentials covers both a wrong password and an unknown
// username. The two cases are merged deliberately so callers cannot probe
// which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrPrincipalNotFound is the resolver's only failure signal. It never
// crosses the HTTP boundary; the orchestrator collapses it into
// ErrInvalidCredentials first.
var ErrPrincipalNotFound = errors.New("principal not found")

var ErrUsernameTaken = errors.New("username is already taken")
var ErrIdentifierTaken = errors.New("identifier is already taken")
var ErrInvalidUserType = errors.New("invalid user type")

// ErrInvalidToken is returned for every token verification failure.
// Expired and tampered tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Package booking implements the reservation core: the metadata catalog,
// the per-screening state registry, the append-only booking log and the
// service facade that ties them together. All state is in memory; seat
// acquisition itself is lock-free and lives in internal/seat.
package booking

import "errors"

// Sentinel errors returned by Service.Reserve. Every failure leaves the
// system untouched: no seat bit is set, no booking id is consumed, no log
// entry is written. Callers compare with errors.Is; the HTTP layer maps
// them onto status codes.

// ErrEmptySeats is returned when the request names no seats at all.
var ErrEmptySeats = errors.New("no seats requested")

// ErrInvalidSeat is returned when a seat identifier falls outside the
// a1..a20 grammar.
var ErrInvalidSeat = errors.New("invalid seat id")

// ErrUnknownMovie is returned when the movie id is not in the catalog.
var ErrUnknownMovie = errors.New("unknown movie")

// ErrUnknownTheater is returned when the theater id is not in the catalog.
var ErrUnknownTheater = errors.New("unknown theater")

// ErrNotLinked is returned when movie and theater both exist but the movie
// is not showing in that theater.
var ErrNotLinked = errors.New("movie is not showing in this theater")

// ErrSeatsUnavailable is returned when at least one requested seat is
// already occupied.
var ErrSeatsUnavailable = errors.New("one or more seats already reserved")

// ErrContention is returned when the lock-free reservation gave up after
// its retry cap even though the requested seats looked free. Rare; the
// caller may simply retry.
var ErrContention = errors.New("reservation retries exhausted")

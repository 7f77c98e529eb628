// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a reservation has won its seats.
// It carries enough information for downstream consumers to log, notify, or
// feed analytics without calling back into the booking service. The broker
// is advisory only: the reservation is already final when this is sent.
type BookingConfirmedEvent struct {
	BookingID   uint64   `json:"booking_id"`
	MovieID     uint32   `json:"movie_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterID   uint32   `json:"theater_id"`
	TheaterName string   `json:"theater_name"`
	Seats       []string `json:"seats"`
	SeatsLeft   uint32   `json:"seats_left"`
	ConfirmedAt string   `json:"confirmed_at"`
}

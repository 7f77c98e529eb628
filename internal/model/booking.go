package model

// Booking is the record produced by a successful reservation. It is
// immutable after construction: the booking log owns it and hands out
// shared read-only references.
//
// Fields:
//
//	ID        – strictly monotonic booking id, dense from 1.
//	MovieID   – movie of the screening the seats belong to.
//	TheaterID – theater of the screening the seats belong to.
//	Seats     – seat identifiers acquired atomically by this booking.
type Booking struct {
	ID        uint64   `json:"booking_id"`
	MovieID   uint32   `json:"movie_id"`
	TheaterID uint32   `json:"theater_id"`
	Seats     []string `json:"seats"`
}

// Package seat implements the compact seat representation used by the
// reservation engine. Each of the twenty seats of a screening maps to one
// bit of a 32-bit occupancy word: bit 0 is seat "a1", bit 19 is seat "a20".
// Identifiers are parsed and formatted here so every other package deals
// only in bit indices and masks.
package seat

import "strconv"

const (
	// MaxSeats is the fixed capacity of every screening.
	MaxSeats = 20

	// AllSeatsMask has one bit set per seat. Bits 20..31 of an occupancy
	// word must always stay zero.
	AllSeatsMask uint32 = (1 << MaxSeats) - 1
)

// ParseSeatID converts a textual seat identifier such as "a5" into its bit
// index (0..19). The leading letter matches case-insensitively and the
// number must be in 1..20 with no leading zero. It returns -1 when the
// token is not a seat.
func ParseSeatID(id string) int {
	if len(id) < 2 || len(id) > 3 {
		return -1
	}
	if id[0] != 'a' && id[0] != 'A' {
		return -1
	}
	num := id[1:]
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return -1
		}
	}
	if len(num) > 1 && num[0] == '0' {
		return -1
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > MaxSeats {
		return -1
	}
	return n - 1
}

// FormatSeatID is the inverse of ParseSeatID, defined on bit indices
// 0..19. Anything outside that range yields the empty string.
func FormatSeatID(bit int) string {
	if bit < 0 || bit >= MaxSeats {
		return ""
	}
	return "a" + strconv.Itoa(bit+1)
}

// IsValidSeatID reports whether id belongs to the a1..a20 grammar.
func IsValidSeatID(id string) bool {
	return ParseSeatID(id) >= 0
}

// BuildMask ORs together the bits of every valid identifier in ids.
// Invalid identifiers contribute nothing; callers that want all-or-nothing
// validation must check each id with IsValidSeatID beforehand.
func BuildMask(ids []string) uint32 {
	var mask uint32
	for _, id := range ids {
		if bit := ParseSeatID(id); bit >= 0 {
			mask |= 1 << uint(bit)
		}
	}
	return mask
}

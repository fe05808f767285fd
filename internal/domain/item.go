package domain

// Item is one input value, kept as text so integers wider than 64 bits
// reach the collaborator with their exact digits.
type Item string

func (i Item) String() string { return string(i) }

// DefaultItems is the built-in probe list: small primes and composites,
// a negative, zero, one, a non-numeric value and two integers past the
// float64 exact range.
var DefaultItems = []Item{
	"2", "3", "4", "5", "7", "11", "13", "15", "17", "20",
	"23", "29", "31", "37", "41", "43", "47", "-7", "0", "1",
	"abc", "99999999999999997", "1000000000000000003",
}

func ItemsFrom(values []string) []Item {
	out := make([]Item, 0, len(values))
	for _, v := range values {
		out = append(out, Item(v))
	}
	return out
}

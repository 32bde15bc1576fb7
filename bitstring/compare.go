package bitstring

// Ordering is the result of a three-way comparison.
type Ordering int

// Orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}

	return "invalid"
}

// Compare orders a and b by the values they represent. Leading zeros do not
// affect the result.
func Compare(a, b BitString) Ordering {
	x, y := a.significant(), b.significant()

	// Without leading zeros a longer string is always larger.
	switch {
	case len(x) < len(y):
		return Less
	case len(x) > len(y):
		return Greater
	}

	for i := range x {
		if x[i] != y[i] {
			if x[i] == One {
				return Greater
			}

			return Less
		}
	}

	return Equal
}

// Equals reports whether a and b represent the same value.
func Equals(a, b BitString) bool {
	return Compare(a, b) == Equal
}

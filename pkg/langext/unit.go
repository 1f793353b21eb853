package langext

// Unit is the payload-free failure of Outcome[T, Unit] and the payload of
// SomeUnit.
type Unit struct{}

func (Unit) String() string {
	return "()"
}

// Placeholder is the element type of Nothing. It has no values of interest.
type Placeholder struct{}

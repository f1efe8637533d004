package bytecode

// Label is an identity-based marker for a position in an instruction
// stream. Two labels denote the same position only if they are the same
// *Label value; the name exists for diagnostics and has no bearing on
// identity.
type Label struct {
	Name string
}

// NewLabel creates a fresh label. The name may be empty.
func NewLabel(name string) *Label {
	return &Label{Name: name}
}

// String returns the label name, or "?" for an unnamed label.
func (l *Label) String() string {
	if l == nil {
		return "<nil>"
	}
	if l.Name == "" {
		return "?"
	}
	return l.Name
}

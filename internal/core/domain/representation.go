package domain

// Kind is the canonical working kind a document is normalised to.
// Six input formats collapse onto three kinds, which keeps the
// conversion matrix at 3x6 instead of 6x6.
type Kind string

// Canonical working kinds.
const (
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"
)

// WorkingRep is the intermediate representation handed from
// normalisation to conversion. Kind is always one of the three
// canonical kinds, regardless of the original format identifier.
type WorkingRep struct {
	Kind    Kind
	Content string
}

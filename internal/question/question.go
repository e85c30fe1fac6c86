package question

// Question types. Anything else found in a payload is carried through
// verbatim so unknown types degrade to "rendered as-is" rather than an error.
const (
	TypeMultiple = "multiple"
	TypeBoolean  = "boolean"
	TypeShort    = "short"
)

// Question is the canonical post-normalization record. IDs are unique within
// one loaded set and options are letter-keyed in input order starting at "A".
type Question struct {
	ID          int               `json:"id"`
	Type        string            `json:"type"`
	Question    string            `json:"question"`
	Options     map[string]string `json:"options"`
	Answer      string            `json:"answer,omitempty"`
	Explanation string            `json:"explanation,omitempty"`
}

// Renumber reassigns sequential ids starting at 1, in place. Used when
// concatenating several sets so ids stay unique across the aggregate.
func Renumber(qs []Question) {
	for i := range qs {
		qs[i].ID = i + 1
	}
}

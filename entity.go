package ytmwiki

// EntityKind identifies what an extracted anchor points at.
type EntityKind uint8

const (
	// EntityIssue is an anchor whose href names an issue.
	EntityIssue EntityKind = iota + 1
	// EntityUser is an anchor whose href names a user.
	EntityUser
)

func (k EntityKind) String() string {
	switch k {
	case EntityIssue:
		return "issue"
	case EntityUser:
		return "user"
	default:
		return "unknown"
	}
}

// Entity is a structured record recovered from one anchor of a rendered
// message.
type Entity struct {
	Kind EntityKind
	// ID is the issue id or the user login.
	ID string
	// Text is the visible anchor text with whitespace collapsed.
	Text string
	// Title is the anchor's title attribute. For issues this is the summary.
	Title    string
	Resolved bool
	Href     string
}

// DisplayName returns the name to show for a user entity, falling back to the
// title and then the login when the anchor has no text.
func (e Entity) DisplayName() string {
	switch {
	case e.Text != "":
		return e.Text
	case e.Title != "":
		return e.Title
	default:
		return e.ID
	}
}

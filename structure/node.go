package structure

// Role identifies the semantic role a structure tree node declares for its
// content
type Role int

const (
	// RoleOther is any tag the bridge has no special handling for
	RoleOther Role = iota

	// RoleHeading is a declared heading; Level carries its depth
	RoleHeading

	// RoleParagraph is ordinary body text
	RoleParagraph

	// RoleListItem is a list entry; Label optionally carries its marker
	RoleListItem
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleHeading:
		return "Heading"
	case RoleParagraph:
		return "Paragraph"
	case RoleListItem:
		return "ListItem"
	default:
		return "Other"
	}
}

// Node is one block in a page's structure tree. Interior nodes carry
// children; leaves carry text.
type Node struct {
	// Role is the node's declared semantic role
	Role Role

	// Level is the declared heading depth; meaningful only for RoleHeading
	Level int

	// Label is the list marker ("1.", "•"); meaningful only for RoleListItem
	Label string

	// Tag is the raw structure tag for RoleOther nodes ("Table", "Figure")
	Tag string

	// Text is the node's textual content
	Text string

	// FontSize is the block's font size in points; 0 means unknown
	FontSize float64

	// Bold is true when the block's text is bold
	Bold bool

	// Italic is true when the block's text is italic
	Italic bool

	// Children are the node's nested blocks
	Children []Node
}

package entities

// Board is a rendered battle status, independent of the chat platform
type Board struct {
	Title       string
	Description string
	Fields      []*BoardField
	Footer      string
	Color       int
	// SyncChoice asks the platform to attach the health-sync buttons
	SyncChoice bool
}

// BoardField is one titled block of a Board
type BoardField struct {
	Name   string
	Value  string
	Inline bool
}

// AddField appends a field and returns the board for chaining
func (b *Board) AddField(name, value string, inline bool) *Board {
	b.Fields = append(b.Fields, &BoardField{Name: name, Value: value, Inline: inline})
	return b
}

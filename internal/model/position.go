package model

import "fmt"

// Position addresses an item in the sectioned grid
type Position struct {
	Section int
	Item    int
}

// NewPosition creates a position
func NewPosition(section, item int) Position {
	return Position{Section: section, Item: item}
}

// String returns "section:item"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Section, p.Item)
}

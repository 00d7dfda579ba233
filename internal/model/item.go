package model

import "time"

// Owner is the person an item is assigned to. The board never inspects it;
// it is carried through from the payload for display only.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Initiative is the larger effort an item belongs to. Inert payload.
type Initiative struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Release is the release an item is scheduled for. Inert payload.
type Release struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a unit of work displayed as a card on the board. Items belong to
// exactly one column and are never created or deleted by the board itself,
// only reassigned between columns.
type Item struct {
	// ID is the opaque stable identifier, unique across all items.
	ID string `json:"id"`

	// Name is the card title.
	Name string `json:"name"`

	// StartAt and EndAt bound the item's scheduled window. EndAt is
	// expected to be at or after StartAt but this is not enforced.
	// A zero time means the payload carried no parseable instant.
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	// ColumnID is the ID of the column this item currently belongs to.
	ColumnID string `json:"column_id"`

	// Column is a denormalized snapshot of the owning column. It must
	// always satisfy Column.ID == ColumnID; mutations update both
	// together so observers never see one without the other.
	Column Column `json:"column"`

	// Descriptive fields carried through from the payload untouched.
	Owner      Owner      `json:"owner"`
	Initiative Initiative `json:"initiative"`
	Release    Release    `json:"release"`
}

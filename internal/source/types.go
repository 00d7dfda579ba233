package source

// Payload is the raw board payload as served by the roadmap endpoint:
// a flat list of features, each carrying a foreign-key-style status
// reference, and a flat list of statuses that defines the left-to-right
// board order.
type Payload struct {
	Features []Feature `json:"features"`
	Statuses []Status  `json:"statuses"`
}

// Feature is a raw item record. Date fields arrive as text and are parsed
// during ingestion.
type Feature struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	StatusID   string `json:"statusId"`
	Owner      Owner  `json:"owner"`
	Initiative Ref    `json:"initiative"`
	Release    Ref    `json:"release"`
}

// Owner is a raw owner record attached to a feature.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Ref is a raw id/name pair used for initiatives and releases.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Status is a raw column record.
type Status struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

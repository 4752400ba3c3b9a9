package domain

import "time"

type EventSummary struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary,omitempty"`
	Date            time.Time `json:"date"`
	Address         string    `json:"address,omitempty"`
	Price           float64   `json:"price"`
	Cancelled       bool      `json:"cancelled"`
	TypeName        string    `json:"type_name,omitempty"`
	TypeDescription string    `json:"type_description,omitempty"`
}

type Performer struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// EventDetail carries the seating layout. Rows or Columns of zero mean the
// backend did not report a layout.
type EventDetail struct {
	ID              int64       `json:"id"`
	CatalogID       *int64      `json:"catalog_id,omitempty"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Summary         string      `json:"summary,omitempty"`
	Date            time.Time   `json:"date"`
	Address         string      `json:"address,omitempty"`
	ImageURL        string      `json:"image_url,omitempty"`
	Price           float64     `json:"price"`
	Cancelled       bool        `json:"cancelled"`
	TypeName        string      `json:"type_name,omitempty"`
	TypeDescription string      `json:"type_description,omitempty"`
	Rows            int         `json:"rows"`
	Columns         int         `json:"columns"`
	Performers      []Performer `json:"performers,omitempty"`
}

package entity

import "time"

// Location is the venue of an event. Coordinates are consumed by the map
// surface; the core only stores them.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Event is a published event. Events are immutable once written: there is
// no update or delete operation.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl"`
	Location    Location  `json:"location"`
	Category    string    `json:"category"`
	Organizer   string    `json:"organizer"`
	Website     string    `json:"website"`
}

package entity

// EventCategory is a static lookup entry for category display metadata.
// The icon is a symbolic name resolved by the rendering surface; the core
// never interprets it.
type EventCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultCategories is the category table keyed into by Event.Category.
var DefaultCategories = []EventCategory{
	{ID: "musica", Name: "Música", Icon: "music", Color: "#3b82f6"},
	{ID: "gastronomia", Name: "Gastronomía", Icon: "utensils", Color: "#f97316"},
	{ID: "cine", Name: "Cine", Icon: "clapperboard", Color: "#8b5cf6"},
	{ID: "arte", Name: "Arte y Cultura", Icon: "palette", Color: "#ec4899"},
	{ID: "deportes", Name: "Deportes", Icon: "trophy", Color: "#ef4444"},
	{ID: "negocios", Name: "Negocios", Icon: "bar-chart", Color: "#10b981"},
}

// CategoryByID looks up a category in the default table.
func CategoryByID(id string) (EventCategory, bool) {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return EventCategory{}, false
}

package model

// Event is one entry of the event catalog.  Events are loaded once when the
// process starts and are never mutated afterwards; sessions and
// registrations refer to them by Name only.
//
// Fields:
//  Name        – unique display name, used as the key everywhere else.
//  ImageURL    – poster shown on the gallery card.
//  Description – one paragraph shown on the card and on the info screen.
//  Rules       – ordered list of rules shown on the info screen.
type Event struct {
	Name        string   `toml:"name" json:"name"`
	ImageURL    string   `toml:"image_url" json:"image_url"`
	Description string   `toml:"description" json:"description"`
	Rules       []string `toml:"rules" json:"rules"`
}

package model

import "time"

// Screen identifies which of the three screens a session is looking at.
type Screen string

const (
	ScreenGallery Screen = "gallery"
	ScreenInfo    Screen = "info"
	ScreenForm    Screen = "form"
)

// ViewState is the navigation state of one session.  Event is a
// back-reference into the catalog by name: it is empty on the gallery and
// always names a catalog event on the info and form screens.
type ViewState struct {
	Screen Screen `json:"screen"`
	Event  string `json:"event,omitempty"`
}

// Gallery is the state every session starts in.
func Gallery() ViewState { return ViewState{Screen: ScreenGallery} }

// Session represents one visitor's interaction with the site.  It owns
// exactly one ViewState and nothing else.
//
// Fields:
//  ID        – random identifier, carried in the session token.
//  State     – current screen and selected event.
//  CreatedAt – when the session was opened.
//  UpdatedAt – last time the state changed.
type Session struct {
	ID        string    `json:"id"`
	State     ViewState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

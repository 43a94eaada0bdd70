// Package view describes what each screen shows.  It is the boundary to
// whatever front end draws the page: handlers return these values as JSON
// and the client re-renders from them after every action.
package view

import (
	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/model"
	"github.com/iliyamo/event-registration/internal/session"
)

// Labels used on the form, in field order.
const (
	LabelFullName      = "Full Name"
	LabelEmail         = "Email Address"
	LabelContactNumber = "Contact Number"
	LabelRollNumber    = "Roll Number"
	LabelDepartment    = "Department"
	LabelEvent         = "Select Event"
	LabelRules         = "I agree to the rules and regulations"
)

// Card is one event tile in the gallery.
type Card struct {
	Name        string           `json:"name"`
	ImageURL    string           `json:"image_url"`
	Description string           `json:"description"`
	Actions     []session.Action `json:"actions"`
}

// Info is the body of the event-info screen.
type Info struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rules       []string `json:"rules"`
}

// Field is one text input on the registration form.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Selector is the event drop-down on the form.
type Selector struct {
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

// Form is the body of the registration screen.
type Form struct {
	Event     string   `json:"event"`
	Fields    []Field  `json:"fields"`
	Selector  Selector `json:"selector"`
	RulesText string   `json:"rules_label"`
}

// Screen is the full description of what a session currently sees.
// Exactly one of Cards, Info or Form is set, matching Name.
type Screen struct {
	Name    model.Screen     `json:"name"`
	Title   string           `json:"title"`
	Actions []session.Action `json:"actions"`
	Cards   []Card           `json:"cards,omitempty"`
	Info    *Info            `json:"info,omitempty"`
	Form    *Form            `json:"form,omitempty"`
}

// formFields lists the text inputs in row order.  Names match the JSON
// keys of model.Registration.
var formFields = []Field{
	{Name: "full_name", Label: LabelFullName},
	{Name: "email", Label: LabelEmail},
	{Name: "contact_number", Label: LabelContactNumber},
	{Name: "roll_number", Label: LabelRollNumber},
	{Name: "department", Label: LabelDepartment},
}

// Render describes st.  A state naming an event missing from c falls back
// to the gallery; the controller never produces one.
func Render(c *catalog.Catalog, st model.ViewState) Screen {
	switch st.Screen {
	case model.ScreenInfo:
		if ev, err := c.Lookup(st.Event); err == nil {
			return Screen{
				Name:    model.ScreenInfo,
				Title:   ev.Name + " Info",
				Actions: session.Actions(st),
				Info:    &Info{Name: ev.Name, Description: ev.Description, Rules: ev.Rules},
			}
		}
	case model.ScreenForm:
		if ev, err := c.Lookup(st.Event); err == nil {
			return Screen{
				Name:    model.ScreenForm,
				Title:   "Register for " + ev.Name,
				Actions: session.Actions(st),
				Form: &Form{
					Event:  ev.Name,
					Fields: append([]Field(nil), formFields...),
					Selector: Selector{
						Label:    LabelEvent,
						Options:  c.Names(),
						Selected: ev.Name,
					},
					RulesText: LabelRules,
				},
			}
		}
	}
	return gallery(c)
}

func gallery(c *catalog.Catalog) Screen {
	st := model.Gallery()
	events := c.Events()
	cards := make([]Card, 0, len(events))
	for _, ev := range events {
		cards = append(cards, Card{
			Name:        ev.Name,
			ImageURL:    ev.ImageURL,
			Description: ev.Description,
			Actions:     session.Actions(st),
		})
	}
	return Screen{
		Name:    model.ScreenGallery,
		Title:   "Events",
		Actions: session.Actions(st),
		Cards:   cards,
	}
}

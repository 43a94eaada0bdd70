// Package session owns the per-visitor navigation state.  A Controller
// applies the three screen transitions to one Session; a Store keeps
// sessions between requests.
package session

import (
	"time"

	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/model"
)

// Action is a button a screen can offer.
type Action string

const (
	ActionRegister Action = "register"
	ActionInfo     Action = "info"
	ActionBack     Action = "back"
	ActionSubmit   Action = "submit"
)

// screenActions lists what each screen exposes.  Info and form only lead
// back to the gallery; there is no direct info <-> form move.
var screenActions = map[model.Screen][]Action{
	model.ScreenGallery: {ActionRegister, ActionInfo},
	model.ScreenInfo:    {ActionBack},
	model.ScreenForm:    {ActionSubmit, ActionBack},
}

// Actions returns the actions offered by the screen of st.
func Actions(st model.ViewState) []Action {
	return append([]Action(nil), screenActions[st.Screen]...)
}

// Allows reports whether the screen of st offers action a.
func Allows(st model.ViewState, a Action) bool {
	for _, x := range screenActions[st.Screen] {
		if x == a {
			return true
		}
	}
	return false
}

// Controller mutates the view state of a single session.  It performs no
// I/O; persisting the session afterwards is the caller's job.
type Controller struct {
	catalog *catalog.Catalog
	sess    *model.Session
	now     func() time.Time
}

// NewController binds a controller to sess.
func NewController(c *catalog.Catalog, sess *model.Session) *Controller {
	return &Controller{catalog: c, sess: sess, now: time.Now}
}

// State returns the current view state.
func (c *Controller) State() model.ViewState { return c.sess.State }

// GoToGallery shows the gallery and clears the selected event.
func (c *Controller) GoToGallery() {
	c.set(model.Gallery())
}

// GoToForm shows the registration form for the named event.  An unknown
// name returns catalog.ErrEventNotFound and leaves the state unchanged.
func (c *Controller) GoToForm(name string) error {
	return c.goTo(model.ScreenForm, name)
}

// GoToInfo shows the rules of the named event.  An unknown name returns
// catalog.ErrEventNotFound and leaves the state unchanged.
func (c *Controller) GoToInfo(name string) error {
	return c.goTo(model.ScreenInfo, name)
}

func (c *Controller) goTo(screen model.Screen, name string) error {
	if !c.catalog.Has(name) {
		return catalog.ErrEventNotFound
	}
	c.set(model.ViewState{Screen: screen, Event: name})
	return nil
}

func (c *Controller) set(st model.ViewState) {
	c.sess.State = st
	c.sess.UpdatedAt = c.now().UTC()
}

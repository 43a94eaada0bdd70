package session

import (
	"errors"
	"testing"

	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/model"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	cat, err := catalog.New([]model.Event{{Name: "Alpha"}, {Name: "Beta"}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewController(cat, &model.Session{ID: "s1", State: model.Gallery()})
}

func TestInitialStateIsGallery(t *testing.T) {
	c := newTestController(t)
	if got := c.State(); got != model.Gallery() {
		t.Fatalf("state = %+v", got)
	}
}

func TestTransitionSequence(t *testing.T) {
	c := newTestController(t)
	steps := []struct {
		name string
		do   func() error
		want model.ViewState
	}{
		{"form alpha", func() error { return c.GoToForm("Alpha") }, model.ViewState{Screen: model.ScreenForm, Event: "Alpha"}},
		{"back", func() error { c.GoToGallery(); return nil }, model.Gallery()},
		{"info beta", func() error { return c.GoToInfo("Beta") }, model.ViewState{Screen: model.ScreenInfo, Event: "Beta"}},
		{"back again", func() error { c.GoToGallery(); return nil }, model.Gallery()},
		{"gallery is idempotent", func() error { c.GoToGallery(); return nil }, model.Gallery()},
		{"info alpha", func() error { return c.GoToInfo("Alpha") }, model.ViewState{Screen: model.ScreenInfo, Event: "Alpha"}},
		{"form beta", func() error { return c.GoToForm("Beta") }, model.ViewState{Screen: model.ScreenForm, Event: "Beta"}},
	}
	for _, st := range steps {
		if err := st.do(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		if got := c.State(); got != st.want {
			t.Fatalf("%s: state = %+v, want %+v", st.name, got, st.want)
		}
	}
}

func TestUnknownEventLeavesStateUnchanged(t *testing.T) {
	c := newTestController(t)
	if err := c.GoToInfo("Alpha"); err != nil {
		t.Fatalf("info: %v", err)
	}
	before := c.State()
	if err := c.GoToForm("Gamma"); !errors.Is(err, catalog.ErrEventNotFound) {
		t.Fatalf("form: expected ErrEventNotFound, got %v", err)
	}
	if err := c.GoToInfo(""); !errors.Is(err, catalog.ErrEventNotFound) {
		t.Fatalf("info: expected ErrEventNotFound, got %v", err)
	}
	if c.State() != before {
		t.Fatalf("state changed to %+v", c.State())
	}
}

func TestScreenActions(t *testing.T) {
	tests := []struct {
		state  model.ViewState
		action Action
		want   bool
	}{
		{model.Gallery(), ActionRegister, true},
		{model.Gallery(), ActionInfo, true},
		{model.Gallery(), ActionBack, false},
		{model.Gallery(), ActionSubmit, false},
		{model.ViewState{Screen: model.ScreenInfo, Event: "A"}, ActionBack, true},
		{model.ViewState{Screen: model.ScreenInfo, Event: "A"}, ActionRegister, false},
		{model.ViewState{Screen: model.ScreenInfo, Event: "A"}, ActionSubmit, false},
		{model.ViewState{Screen: model.ScreenForm, Event: "A"}, ActionSubmit, true},
		{model.ViewState{Screen: model.ScreenForm, Event: "A"}, ActionBack, true},
		{model.ViewState{Screen: model.ScreenForm, Event: "A"}, ActionInfo, false},
	}
	for _, tt := range tests {
		if got := Allows(tt.state, tt.action); got != tt.want {
			t.Errorf("Allows(%s, %s) = %v, want %v", tt.state.Screen, tt.action, got, tt.want)
		}
	}
}

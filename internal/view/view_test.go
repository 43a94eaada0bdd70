package view

import (
	"reflect"
	"testing"

	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/model"
	"github.com/iliyamo/event-registration/internal/session"
)

func TestRenderGallery(t *testing.T) {
	s := Render(catalog.Default(), model.Gallery())
	if s.Name != model.ScreenGallery || len(s.Cards) != 4 {
		t.Fatalf("unexpected gallery: %+v", s)
	}
	if s.Cards[2].Name != "Robo War" || s.Cards[2].ImageURL == "" {
		t.Fatalf("card 2 = %+v", s.Cards[2])
	}
	want := []session.Action{session.ActionRegister, session.ActionInfo}
	if !reflect.DeepEqual(s.Cards[0].Actions, want) {
		t.Fatalf("card actions = %v", s.Cards[0].Actions)
	}
	if s.Info != nil || s.Form != nil {
		t.Fatalf("gallery carries other screens")
	}
}

func TestRenderInfoListsRulesInOrder(t *testing.T) {
	s := Render(catalog.Default(), model.ViewState{Screen: model.ScreenInfo, Event: "Robo War"})
	if s.Name != model.ScreenInfo || s.Info == nil {
		t.Fatalf("unexpected screen: %+v", s)
	}
	want := []string{
		"Register in teams",
		"Use approved robot dimensions",
		"Safety first: goggles mandatory",
		"No external interference",
	}
	if !reflect.DeepEqual(s.Info.Rules, want) {
		t.Fatalf("rules = %v", s.Info.Rules)
	}
	if !reflect.DeepEqual(s.Actions, []session.Action{session.ActionBack}) {
		t.Fatalf("actions = %v", s.Actions)
	}
}

func TestRenderFormPreselectsEvent(t *testing.T) {
	s := Render(catalog.Default(), model.ViewState{Screen: model.ScreenForm, Event: "Startup Pitch"})
	if s.Form == nil {
		t.Fatalf("no form: %+v", s)
	}
	if s.Title != "Register for Startup Pitch" {
		t.Fatalf("title = %q", s.Title)
	}
	if s.Form.Selector.Selected != "Startup Pitch" {
		t.Fatalf("selected = %q", s.Form.Selector.Selected)
	}
	if len(s.Form.Selector.Options) != 4 || len(s.Form.Fields) != 5 {
		t.Fatalf("form = %+v", s.Form)
	}
	if s.Form.RulesText != LabelRules {
		t.Fatalf("rules label = %q", s.Form.RulesText)
	}
}

func TestRenderUnknownEventFallsBackToGallery(t *testing.T) {
	s := Render(catalog.Default(), model.ViewState{Screen: model.ScreenInfo, Event: "Nope"})
	if s.Name != model.ScreenGallery {
		t.Fatalf("screen = %s", s.Name)
	}
}

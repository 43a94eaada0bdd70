package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-registration/internal/catalog"
	"github.com/iliyamo/event-registration/internal/middleware"
	"github.com/iliyamo/event-registration/internal/model"
	"github.com/iliyamo/event-registration/internal/registration"
	"github.com/iliyamo/event-registration/internal/session"
	"github.com/iliyamo/event-registration/internal/utils"
	"github.com/iliyamo/event-registration/internal/view"
)

// Feedback messages shown after a submission.
const (
	MsgSuccess       = "Registration successful!"
	MsgRulesRequired = "You must agree to the rules to register."
	MsgStoreFailed   = "Registration failed, please try again."
	MsgUnknownEvent  = "Please select one of the listed events."
)

// Feedback is transient: it is returned with one response and never stored
// on the session.
type Feedback struct {
	Kind    registration.Outcome `json:"kind"`
	Message string               `json:"message"`
}

// screenResp carries a fresh token whenever the request touched the
// session, so an active visitor is never logged out mid-flow.
type screenResp struct {
	Token    string      `json:"token,omitempty"`
	Expires  *time.Time  `json:"expires,omitempty"`
	Screen   view.Screen `json:"screen"`
	Feedback *Feedback   `json:"feedback,omitempty"`
}

type createResp struct {
	Token   string      `json:"token"`
	Expires time.Time   `json:"expires"`
	Screen  view.Screen `json:"screen"`
}

type eventReq struct {
	Event string `json:"event"`
}

type submitReq struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RollNumber    string `json:"roll_number"`
	Department    string `json:"department"`
	Event         string `json:"event"`
	RulesAccepted bool   `json:"rules_accepted"`
}

// SessionHandler drives one visitor through gallery, info and form.  Each
// request performs at most one transition or one submission and answers
// with the screen to draw next.
type SessionHandler struct {
	Catalog   *catalog.Catalog
	Store     session.Store
	Submitter *registration.Submitter
	Secret    string
	TTL       time.Duration
	Now       func() time.Time // token issue time; nil means time.Now
}

// NewSessionHandler wires a SessionHandler.  All dependencies must be non-nil.
func NewSessionHandler(cat *catalog.Catalog, store session.Store, sub *registration.Submitter, secret string, ttl time.Duration) *SessionHandler {
	if cat == nil || store == nil || sub == nil {
		panic("nil dependency passed to NewSessionHandler")
	}
	return &SessionHandler{Catalog: cat, Store: store, Submitter: sub, Secret: secret, TTL: ttl}
}

// touch saves sess, restarting its idle lifetime, and returns a token
// whose expiry matches.
func (h *SessionHandler) touch(c echo.Context, sess *model.Session) (utils.SessionToken, error) {
	if err := h.Store.Save(c.Request().Context(), sess); err != nil {
		return utils.SessionToken{}, err
	}
	return utils.NewSessionTokenAt(h.Secret, sess.ID, h.now(), h.TTL)
}

func (h *SessionHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Create handles POST /v1/sessions.  It opens a session on the gallery and
// returns the token the client must send with every later request.
func (h *SessionHandler) Create(c echo.Context) error {
	sess, err := h.Store.Create(c.Request().Context())
	if err != nil {
		log.Printf("session: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create session failed"})
	}
	tok, err := utils.NewSessionTokenAt(h.Secret, sess.ID, h.now(), h.TTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, createResp{
		Token:   tok.Token,
		Expires: tok.Exp,
		Screen:  view.Render(h.Catalog, sess.State),
	})
}

// Current handles GET /v1/session and redraws the active screen.
func (h *SessionHandler) Current(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, screenResp{Screen: view.Render(h.Catalog, sess.State)})
}

// Gallery handles POST /v1/session/gallery ("Back to Events").  It always
// succeeds.
func (h *SessionHandler) Gallery(c echo.Context) error {
	return h.navigate(c, "", func(ctl *session.Controller, _ string) error {
		ctl.GoToGallery()
		return nil
	})
}

// Info handles POST /v1/session/info with body {"event": name}.  Only the
// gallery offers this action.
func (h *SessionHandler) Info(c echo.Context) error {
	return h.navigate(c, session.ActionInfo, (*session.Controller).GoToInfo)
}

// Form handles POST /v1/session/form with body {"event": name}.  Only the
// gallery offers this action.
func (h *SessionHandler) Form(c echo.Context) error {
	return h.navigate(c, session.ActionRegister, (*session.Controller).GoToForm)
}

// navigate checks that the current screen offers action (empty means
// always allowed and no body), applies move with the requested event and
// persists the session.
func (h *SessionHandler) navigate(c echo.Context, action session.Action, move func(*session.Controller, string) error) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var event string
	if action != "" {
		var req eventReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}
		if !session.Allows(sess.State, action) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "action not available on this screen"})
		}
		event = strings.TrimSpace(req.Event)
	}

	ctl := session.NewController(h.Catalog, sess)
	if err := move(ctl, event); err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "navigation failed"})
	}
	tok, err := h.touch(c, sess)
	if err != nil {
		log.Printf("session: save %s failed: %v", sess.ID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session store error"})
	}
	return c.JSON(http.StatusOK, screenResp{
		Token:   tok.Token,
		Expires: &tok.Exp,
		Screen:  view.Render(h.Catalog, sess.State),
	})
}

// Submit handles POST /v1/session/submit.  The visitor stays on the form
// whatever the outcome; the result comes back as feedback.  An empty event
// defaults to the one the form was opened for.
func (h *SessionHandler) Submit(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !session.Allows(sess.State, session.ActionSubmit) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no registration form open"})
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	screen := view.Render(h.Catalog, sess.State)
	event := strings.TrimSpace(req.Event)
	if event == "" {
		event = sess.State.Event
	}
	if !h.Catalog.Has(event) {
		return c.JSON(http.StatusUnprocessableEntity, screenResp{
			Screen:   screen,
			Feedback: &Feedback{Kind: registration.ValidationFailed, Message: MsgUnknownEvent},
		})
	}

	rec := model.Registration{
		FullName:      req.FullName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		RollNumber:    req.RollNumber,
		Department:    req.Department,
		EventName:     event,
	}
	err := h.Submitter.SubmitFor(c.Request().Context(), sess.ID, rec, req.RulesAccepted)

	var (
		status int
		fb     Feedback
	)
	switch registration.OutcomeOf(err) {
	case registration.Success:
		status, fb = http.StatusCreated, Feedback{Kind: registration.Success, Message: MsgSuccess}
	case registration.ValidationFailed:
		status, fb = http.StatusUnprocessableEntity, Feedback{Kind: registration.ValidationFailed, Message: MsgRulesRequired}
	default:
		log.Printf("registration: session %s event %q: %v", sess.ID, event, err)
		status, fb = http.StatusBadGateway, Feedback{Kind: registration.ExternalStoreError, Message: MsgStoreFailed}
	}

	resp := screenResp{Screen: screen, Feedback: &fb}
	// The outcome is already decided; a failed touch only costs the refresh.
	if tok, err := h.touch(c, sess); err != nil {
		log.Printf("session: save %s failed: %v", sess.ID, err)
	} else {
		resp.Token, resp.Expires = tok.Token, &tok.Exp
	}
	return c.JSON(status, resp)
}

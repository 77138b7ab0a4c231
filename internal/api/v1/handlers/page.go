package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-fetcher/internal/sessions"
	"ulascansenturk/weather-fetcher/internal/ui"
)

const SessionCookieName = "wf_session"

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	View        ui.View
	Loading     bool
	AutoRefresh bool
}

// PageHandler serves the HTML page and the form actions of one browser session.
type PageHandler struct {
	sessions     sessions.Store
	secureCookie bool
}

func NewPageHandler(store sessions.Store, secureCookie bool) *PageHandler {
	return &PageHandler{
		sessions:     store,
		secureCookie: secureCookie,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	controller := h.session(w, r)
	view := controller.View()
	loading := view.Status == ui.StatusLoading

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	err := pageTemplate.Execute(w, pageData{
		View:        view,
		Loading:     loading,
		AutoRefresh: loading,
	})
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}

// Lookup stores the submitted city and starts a lookup unless one is already running.
func (h *PageHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid form")
		return
	}

	controller := h.session(w, r)
	controller.SetInput(r.PostForm.Get("city"))

	if !controller.Submit(r.Context()) {
		log.Ctx(r.Context()).Debug().Str("status", controller.State().Status.String()).Msg("submit ignored")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.session(w, r).ToggleTheme()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// State returns the derived view of the caller's session as JSON.
func (h *PageHandler) State(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.session(w, r).View())
}

func (h *PageHandler) session(w http.ResponseWriter, r *http.Request) *ui.Controller {
	var id string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		id = cookie.Value
	}

	controller, sessionID := h.sessions.GetOrCreate(id)
	if sessionID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return controller
}

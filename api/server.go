package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matt-g-everett/styletx/stream"
	"github.com/matt-g-everett/styletx/tween"
)

// Controller is what the API drives.
type Controller interface {
	Animate(cmd stream.Command) (tween.RunResult, error)
	Stop()
	State() tween.State
}

// StyleSource exposes the element's current style.
type StyleSource interface {
	Snapshot() tween.StyleMap
}

// Api serves the element state over HTTP.
type Api struct {
	controller Controller
	style      StyleSource
	gatherer   prometheus.Gatherer
}

// NewApi creates an instance of an Api.
func NewApi(controller Controller, style StyleSource, gatherer prometheus.Gatherer) *Api {
	a := new(Api)
	a.controller = controller
	a.style = style
	a.gatherer = gatherer
	return a
}

// Handler returns the router for the API.
func (a *Api) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/style", a.getStyle)
	r.Get("/state", a.getState)
	r.Post("/animate", a.postAnimate)
	r.Post("/stop", a.postStop)
	r.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	return r
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}

type stateResponse struct {
	State string `json:"state"`
}

type animateResponse struct {
	Outcome string `json:"outcome"`
	ID      string `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *Api) getStyle(w http.ResponseWriter, r *http.Request) {
	style := a.style.Snapshot()
	out := make(map[string]string, len(style))
	for k, v := range style {
		out[k] = tween.FormatValue(v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *Api) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{State: a.controller.State().String()})
}

func (a *Api) postAnimate(w http.ResponseWriter, r *http.Request) {
	var cmd stream.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if cmd.Type != "" && cmd.Type != stream.CommandAnimate {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("command type %q is not accepted here", cmd.Type)})
		return
	}

	res, err := a.controller.Animate(cmd)
	switch {
	case errors.Is(err, tween.ErrMissingAddon), errors.Is(err, tween.ErrNoTargetStyle):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	case res.Outcome == tween.AlreadyRunning:
		writeJSON(w, http.StatusConflict, animateResponse{Outcome: res.Outcome.String()})
	default:
		writeJSON(w, http.StatusAccepted, animateResponse{Outcome: res.Outcome.String(), ID: res.ID})
	}
}

func (a *Api) postStop(w http.ResponseWriter, r *http.Request) {
	a.controller.Stop()
	writeJSON(w, http.StatusOK, stateResponse{State: a.controller.State().String()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Write response: %v", err)
	}
}

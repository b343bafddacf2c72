package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler exposes the reconciliation operations over HTTP. Requests only
// enqueue a job and return its id; TAN approval can take minutes, so
// nothing banking-related runs on the request path.
type Handler struct {
	reconciler Reconciler
	jobs       JobQueue
}

func NewHandler(
	reconciler Reconciler,
	jobs JobQueue,
) *Handler {
	return &Handler{
		reconciler: reconciler,
		jobs:       jobs,
	}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.healthz).Methods(http.MethodGet)
	r.HandleFunc("/transaction/{document_id}", h.processDocument).
		Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/postbox", h.importPostbox).
		Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/keepalive", h.keepalive).
		Methods(http.MethodGet, http.MethodPost)

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) processDocument(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]
	interactive := queryFlag(r, "interactive")

	id := h.jobs.Enqueue("process-document", func(ctx context.Context) error {
		return h.reconciler.ProcessDocument(ctx, documentID, interactive)
	})

	writeAccepted(w, id)
}

func (h *Handler) importPostbox(w http.ResponseWriter, r *http.Request) {
	var (
		interactive = queryFlag(r, "interactive")
		getAds      = queryFlag(r, "ads")
		getArchived = queryFlag(r, "archived")
		getRead     = queryFlag(r, "read")
	)

	id := h.jobs.Enqueue("import-postbox", func(ctx context.Context) error {
		return h.reconciler.ImportPostbox(ctx, interactive, getAds, getArchived, getRead)
	})

	writeAccepted(w, id)
}

func (h *Handler) keepalive(w http.ResponseWriter, _ *http.Request) {
	id := h.jobs.Enqueue("keepalive", func(ctx context.Context) error {
		return h.reconciler.Keepalive(ctx)
	})

	writeAccepted(w, id)
}

func queryFlag(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false
	}

	return value
}

func writeAccepted(w http.ResponseWriter, jobID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	_ = json.NewEncoder(w).Encode(map[string]string{
		"jobId": jobID,
	})
}

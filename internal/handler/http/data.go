package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/utils"
	"github.com/ovoronin/go-issue-tracker/models"
)

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	query := parseListQuery(r)

	items, err := h.services.EntityService.List(r.Context(), collection, query)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("collection", collection).Msg("error listing entities")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Items: items}, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	doc, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.services.EntityService.Create(r.Context(), collection, doc)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("collection", collection).Msg("error creating entity")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteRawJSON(w, created, http.StatusCreated) //nolint:errcheck // response already committed
}

func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	var patch models.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.EntityService.Update(r.Context(), collection, id, patch)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("collection", collection).Str("id", id).Msg("error updating entity")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteRawJSON(w, updated, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	if err := h.services.EntityService.Delete(r.Context(), collection, id); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("collection", collection).Str("id", id).Msg("error deleting entity")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseListQuery builds a [models.ListQuery] from the request's query
// string. Equality filters arrive as "filter[field]=value" parameters;
// sorting arrives as "sort=field,-field" where a leading dash means
// descending.
func parseListQuery(r *http.Request) models.ListQuery {
	var query models.ListQuery

	for key, values := range r.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") || len(values) == 0 {
			continue
		}
		field := key[len("filter[") : len(key)-1]
		if field == "" {
			continue
		}
		if query.Filter == nil {
			query.Filter = map[string]string{}
		}
		query.Filter[field] = values[0]
	}

	if sort := r.URL.Query().Get("sort"); sort != "" {
		query.Sort = map[string]int{}
		for _, field := range strings.Split(sort, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			dir := models.SortAsc
			if strings.HasPrefix(field, "-") {
				field = field[1:]
				dir = models.SortDesc
			}
			query.Sort[field] = dir
		}
	}

	return query
}

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/utils"
	"github.com/ovoronin/go-issue-tracker/models"
)

// maxUploadMemory caps the in-memory part of a multipart upload; larger
// parts spill to temporary files.
const maxUploadMemory = 32 << 20

func (h *Handler) uploadFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		log.Error().Msg("no files in upload request")
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	files := make([]models.FileUpload, 0, len(headers))
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error opening multipart file")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(part)
		part.Close() //nolint:errcheck,gosec // read-only part
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error reading multipart file")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		files = append(files, models.FileUpload{Name: header.Filename, Content: content})
	}

	results := h.services.FileService.Upload(r.Context(), files)

	utils.WriteJSON(w, results, http.StatusOK) //nolint:errcheck // response already committed
}

func (h *Handler) deleteFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body struct {
		URLs []string `json:"urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.FileService.Delete(r.Context(), body.URLs); err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("error deleting files")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	content, err := h.services.FileService.Open(r.Context(), name)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("file", name).Msg("error opening stored file")
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(content) //nolint:errcheck // response already committed
}

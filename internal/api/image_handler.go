package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/randpic-api/internal/gallery"
	"github.com/phrazzld/randpic-api/internal/platform/logger"
	"github.com/phrazzld/randpic-api/internal/selector"
)

// ContentTypeJPEG is the content type of every served image.
const ContentTypeJPEG = "image/jpeg"

// FilterParam is the URL parameter holding the filter token.
const FilterParam = "subfolder"

// ImageHandler serves random images from a fixed index.
type ImageHandler struct {
	index  *gallery.Index
	picker *selector.Picker
	logger *slog.Logger
}

// NewImageHandler creates an ImageHandler over idx. The index is shared
// read-only by all requests.
func NewImageHandler(idx *gallery.Index, picker *selector.Picker, logger *slog.Logger) *ImageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageHandler{
		index:  idx,
		picker: picker,
		logger: logger,
	}
}

// ServeRandom handles GET /api/images/{subfolder} requests
func (h *ImageHandler) ServeRandom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	token := chi.URLParam(r, FilterParam)

	path, err := h.picker.Select(h.index, token)
	if err != nil {
		HandleAPIError(w, r, err, slog.String("filter", token))
		return
	}

	data, err := h.index.ReadImage(path)
	if err != nil {
		HandleAPIError(w, r, err,
			slog.String("filter", token),
			slog.String("image_path", path))
		return
	}

	log.Info("serving image",
		"image_path", path,
		"filter", token,
		"client_addr", r.RemoteAddr)

	w.Header().Set("Content-Type", ContentTypeJPEG)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Warn("failed to write image response",
			"image_path", path,
			"error", err)
	}
}

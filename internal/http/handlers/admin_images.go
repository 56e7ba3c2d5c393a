package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sankaL/loku-caters-sub000/internal/utils"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

const imagePrefix = "event-images/"

// AdminImageUpload accepts a multipart JPEG or PNG, stores the original and a
// listing thumbnail in the object store, and returns both public URLs.
func (h *Handler) AdminImageUpload(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Image storage is not configured")
		return
	}

	maxSize := h.Config.MaxImageSizeBytes
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "A file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	img, err := utils.DecodeImage(data, contentType)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "UNSUPPORTED_IMAGE", "Only JPEG and PNG images are accepted")
		return
	}

	thumb, err := utils.Thumbnail(img)
	if err != nil {
		h.Logger.Error("render thumbnail", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process image")
		return
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	base := fmt.Sprintf("%s%s_%s", imagePrefix, time.Now().UTC().Format("20060102150405"), uuid.NewString())

	ctx := r.Context()
	originalURL, err := h.Store.PutObject(ctx, base+ext, data, contentType)
	if err != nil {
		h.Logger.Error("store image", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		return
	}
	thumbURL, err := h.Store.PutObject(ctx, base+"_thumb.jpg", thumb, "image/jpeg")
	if err != nil {
		h.Logger.Error("store thumbnail", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		return
	}

	response.Created(w, map[string]any{
		"url":       originalURL,
		"thumb_url": thumbURL,
	})
}

func (h *Handler) AdminImageList(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Image storage is not configured")
		return
	}

	keys, err := h.Store.ListKeys(r.Context(), imagePrefix)
	if err != nil {
		h.Logger.Error("list images", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list images")
		return
	}

	images := []map[string]string{}
	for _, key := range keys {
		if strings.HasSuffix(key, "_thumb.jpg") {
			continue
		}
		images = append(images, map[string]string{
			"key": key,
			"url": h.Store.PublicURL(key),
		})
	}
	response.Success(w, images)
}

func (h *Handler) AdminImageDelete(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Image storage is not configured")
		return
	}

	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if resolved, ok := h.Store.ResolveKeyFromURL(key); ok {
		key = resolved
	}
	if key == "" || !strings.HasPrefix(key, imagePrefix) {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "A managed image key or URL is required")
		return
	}

	if err := h.Store.DeleteKey(r.Context(), key); err != nil {
		h.Logger.Error("delete image", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete image")
		return
	}
	response.Success(w, map[string]any{"deleted": key})
}

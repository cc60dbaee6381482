package media

import (
	"errors"
	"net/http"

	"blog-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// UploadAvatar accepts a multipart "file" field and responds with the
// stored image's public URL.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return httpx.BadRequest("invalid multipart body")
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		return httpx.BadRequest("missing file field")
	}
	defer file.Close()

	url, err := h.svc.UploadAvatar(r.Context(), uid, hdr.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			return httpx.BadRequest("unsupported image type")
		case errors.Is(err, ErrTooLarge):
			return httpx.BadRequest("image exceeds size limit")
		}
		return err
	}
	httpx.WriteJSON(w, map[string]string{"url": url}, http.StatusCreated)
	return nil
}

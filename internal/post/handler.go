package post

import (
	"errors"
	"net/http"
	"strconv"

	"blog-service/internal/shared/httpx"
	"blog-service/internal/shared/validate"
	"blog-service/internal/user"
)

type Handler struct {
	svc   Service
	users user.Service
}

func NewHandler(s Service, users user.Service) *Handler {
	return &Handler{svc: s, users: users}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	posts, err := h.svc.List(r.URL.Query().Get("userid"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, posts, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	id, err := pathID(r)
	if err != nil {
		return err
	}
	p, err := h.svc.GetByID(id)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	author, err := h.author(r)
	if err != nil {
		return err
	}
	body, err := httpx.Decode[TextReq](r)
	if err != nil {
		return err
	}
	body.Normalize()
	if err = validate.Struct(body); err != nil {
		return mapErr(err)
	}
	p, err := h.svc.Create(author, body.Text)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	author, err := h.author(r)
	if err != nil {
		return err
	}
	id, err := pathID(r)
	if err != nil {
		return err
	}
	body, err := httpx.Decode[TextReq](r)
	if err != nil {
		return err
	}
	body.Normalize()
	if err = validate.Struct(body); err != nil {
		return mapErr(err)
	}
	p, err := h.svc.Update(id, author.ID, body.Text)
	if err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	author, err := h.author(r)
	if err != nil {
		return err
	}
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id, author.ID); err != nil {
		return mapErr(err)
	}
	httpx.WriteJSON(w, map[string]string{"message": "post deleted"}, http.StatusOK)
	return nil
}

// author resolves the full user record behind the guard's token; a token
// whose subject no longer exists is treated as unauthorized.
func (h *Handler) author(r *http.Request) (*user.User, error) {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return nil, err
	}
	u, err := h.users.GetByID(uid)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, httpx.Unauthorized("unauthorized")
		}
		return nil, err
	}
	return u, nil
}

// Non-numeric ids fall out as 404, same as a numeric id with no record.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, httpx.NotFound("post not found")
	}
	return uint(id), nil
}

func mapErr(err error) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		return httpx.BadRequest(verr.Message)
	case errors.Is(err, ErrNotFound):
		return httpx.NotFound("post not found")
	case errors.Is(err, ErrForbidden):
		return httpx.Forbidden("not the post author")
	}
	return err
}

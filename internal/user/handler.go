package user

import (
	"errors"
	"net/http"

	"blog-service/internal/shared/httpx"
	"blog-service/internal/shared/jwt"
	"blog-service/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[SignupReq](r)
	if err != nil {
		return err
	}
	body.Normalize()
	if err = validate.Struct(body); err != nil {
		return mapErr(err)
	}
	u, err := h.svc.Signup(body)
	if err != nil {
		return mapErr(err)
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"id": u.ID, "userid": u.Userid, "token": token,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[LoginReq](r)
	if err != nil {
		return err
	}
	body.Normalize()
	if err = validate.Struct(body); err != nil {
		return mapErr(err)
	}
	u, err := h.svc.Login(body.Userid, body.Password)
	if err != nil {
		return mapErr(err)
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"id": u.ID, "userid": u.Userid, "name": u.Name, "email": u.Email, "url": u.URL, "token": token,
	}, http.StatusOK)
	return nil
}

// Me resolves the identity behind the auth guard's token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.Unauthorized("unauthorized")
		}
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}

func mapErr(err error) error {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		return httpx.BadRequest(verr.Message)
	case errors.Is(err, ErrExists):
		return httpx.Conflict("user already exists")
	case errors.Is(err, ErrWrongCredentials):
		return httpx.Unauthorized("wrong credentials")
	case errors.Is(err, ErrNotFound):
		return httpx.NotFound("user not found")
	}
	return err
}

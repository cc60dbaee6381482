package user

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Userid    string    `gorm:"uniqueIndex;size:64" json:"userid"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:120" json:"email"`
	PassHash  string    `gorm:"size:255" json:"-"`
	URL       string    `gorm:"size:512" json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SignupReq struct {
	Userid   string `json:"userid" validate:"required,min=4,alphanum"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	URL      string `json:"url"`
}

func (r *SignupReq) Normalize() {
	r.Userid = strings.TrimSpace(r.Userid)
	r.Password = strings.TrimSpace(r.Password)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.URL = strings.TrimSpace(r.URL)
}

type LoginReq struct {
	Userid   string `json:"userid" validate:"required,min=4,alphanum"`
	Password string `json:"password" validate:"required,min=4"`
}

func (r *LoginReq) Normalize() {
	r.Userid = strings.TrimSpace(r.Userid)
	r.Password = strings.TrimSpace(r.Password)
}

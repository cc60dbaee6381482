package post

import (
	"strings"
	"time"
)

// Post carries the author's handle and display name denormalized, so list
// responses and the ?userid= filter need no join.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	Userid    string    `gorm:"index;size:64" json:"userid"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TextReq struct {
	Text string `json:"text" validate:"required,min=4"`
}

func (r *TextReq) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

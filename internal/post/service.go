package post

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"blog-service/internal/kafka"
	"blog-service/internal/user"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("not the post author")
)

type Service interface {
	Create(author *user.User, text string) (*Post, error)
	List(userid string) ([]Post, error)
	GetByID(id uint) (*Post, error)
	Update(id, authorID uint, text string) (*Post, error)
	Delete(id, authorID uint) error
}

type service struct {
	repo   Repository
	events kafka.Publisher
}

func NewService(r Repository, events kafka.Publisher) Service {
	return &service{repo: r, events: events}
}

func (s *service) Create(author *user.User, text string) (*Post, error) {
	p, err := s.repo.Create(&Post{
		Text:     text,
		AuthorID: author.ID,
		Userid:   author.Userid,
		Name:     author.Name,
	})
	if err != nil {
		return nil, err
	}
	s.publishCreated(p)
	return p, nil
}

func (s *service) publishCreated(p *Post) {
	payload, _ := json.Marshal(map[string]any{
		"id": p.ID, "userid": p.Userid, "text": p.Text, "created_at": p.CreatedAt,
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.events.Publish(ctx, strconv.FormatUint(uint64(p.ID), 10), payload); err != nil {
		log.Printf("publish posts.created: %v", err)
	}
}

func (s *service) List(userid string) ([]Post, error) {
	return s.repo.List(userid)
}

func (s *service) GetByID(id uint) (*Post, error) {
	return s.repo.FindByID(id)
}

// Update rewrites the text, provided the caller authored the post.
func (s *service) Update(id, authorID uint, text string) (*Post, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != authorID {
		return nil, ErrForbidden
	}
	p.Text = text
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(id, authorID uint) error {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if p.AuthorID != authorID {
		return ErrForbidden
	}
	return s.repo.Delete(p.ID)
}

package post

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Post) (*Post, error)
	FindByID(id uint) (*Post, error)
	List(userid string) ([]Post, error)
	Save(p *Post) error
	Delete(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Post) (*Post, error) {
	if err := r.db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) FindByID(id uint) (*Post, error) {
	var p Post
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns posts newest first, optionally narrowed to one author handle.
func (r *repository) List(userid string) ([]Post, error) {
	q := r.db.Order("created_at DESC")
	if userid != "" {
		q = q.Where("userid = ?", userid)
	}
	posts := make([]Post, 0)
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) Save(p *Post) error {
	return r.db.Save(p).Error
}

func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Post{}, id).Error
}

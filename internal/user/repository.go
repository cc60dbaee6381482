package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) (*User, error)
	FindByID(id uint) (*User, error)
	FindByUserid(userid string) (*User, error)
	FindByEmail(email string) (*User, error)
	UpdateURL(id uint, url string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) (*User, error) {
	if err := r.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) FindByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByUserid(userid string) (*User, error) {
	var u User
	if err := r.db.Where("userid = ?", userid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateURL(id uint, url string) error {
	return r.db.Model(&User{}).Where("id = ?", id).Update("url", url).Error
}

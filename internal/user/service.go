package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrExists           = errors.New("user already exists")
	ErrWrongCredentials = errors.New("wrong credentials")
)

type Service interface {
	Signup(req SignupReq) (*User, error)
	Login(userid, password string) (*User, error)
	GetByUserid(userid string) (*User, error)
	GetByID(id uint) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

// Signup checks handle and email for duplicates before inserting; the
// unique indexes close the remaining race window.
func (s *service) Signup(req SignupReq) (*User, error) {
	if exist, _ := s.repo.FindByUserid(req.Userid); exist != nil {
		return nil, ErrExists
	}
	if exist, _ := s.repo.FindByEmail(req.Email); exist != nil {
		return nil, ErrExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(&User{
		Userid:   req.Userid,
		Name:     req.Name,
		Email:    req.Email,
		PassHash: string(hash),
		URL:      req.URL,
	})
}

// Login resolves the user by handle and compares the bcrypt hash. Unknown
// handle and bad password are indistinguishable to the caller.
func (s *service) Login(userid, password string) (*User, error) {
	u, err := s.repo.FindByUserid(userid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return nil, ErrWrongCredentials
	}
	return u, nil
}

func (s *service) GetByUserid(userid string) (*User, error) { return s.repo.FindByUserid(userid) }

func (s *service) GetByID(id uint) (*User, error) { return s.repo.FindByID(id) }

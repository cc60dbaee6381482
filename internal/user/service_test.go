package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byUserid map[string]*User
	byEmail  map[string]*User
	byID     map[uint]*User
	created  []*User
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byUserid: map[string]*User{},
		byEmail:  map[string]*User{},
		byID:     map[uint]*User{},
		nextID:   1,
	}
}

func (f *fakeRepo) Create(u *User) (*User, error) {
	u.ID = f.nextID
	f.nextID++
	f.byUserid[u.Userid] = u
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeRepo) FindByID(id uint) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) FindByUserid(userid string) (*User, error) {
	if u, ok := f.byUserid[userid]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) FindByEmail(email string) (*User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) UpdateURL(id uint, url string) error {
	if u, ok := f.byID[id]; ok {
		u.URL = url
	}
	return nil
}

func signupReq() SignupReq {
	return SignupReq{Userid: "abcd", Password: "1234", Name: "A", Email: "a@b.com"}
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	u, err := svc.Signup(signupReq())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.NotEqual(t, "1234", u.PassHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte("1234")))
}

func TestSignupDuplicateUserid(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Signup(signupReq())
	require.NoError(t, err)

	dup := signupReq()
	dup.Email = "other@b.com"
	_, err = svc.Signup(dup)
	assert.ErrorIs(t, err, ErrExists)
	assert.Len(t, repo.created, 1)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Signup(signupReq())
	require.NoError(t, err)

	dup := signupReq()
	dup.Userid = "wxyz"
	_, err = svc.Signup(dup)
	assert.ErrorIs(t, err, ErrExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Signup(signupReq())
	require.NoError(t, err)

	u, err := svc.Login("abcd", "1234")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Signup(signupReq())
	require.NoError(t, err)

	_, err = svc.Login("abcd", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	// unknown handle and bad password must be indistinguishable
	_, err := svc.Login("ghost", "1234")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Signup(signupReq())
	require.NoError(t, err)

	u, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "abcd", u.Userid)

	_, err = svc.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

package post

import (
	"context"
	"encoding/json"
	"testing"

	"blog-service/internal/kafka"
	"blog-service/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	posts  map[uint]*Post
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[uint]*Post{}, nextID: 1}
}

func (f *fakeRepo) Create(p *Post) (*Post, error) {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.posts[p.ID] = &cp
	return p, nil
}

func (f *fakeRepo) FindByID(id uint) (*Post, error) {
	if p, ok := f.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(userid string) ([]Post, error) {
	var out []Post
	for _, p := range f.posts {
		if userid == "" || p.Userid == userid {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Save(p *Post) error {
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(id uint) error {
	delete(f.posts, id)
	return nil
}

type capturingPublisher struct {
	keys   []string
	values [][]byte
}

func (c *capturingPublisher) Publish(_ context.Context, key string, value []byte) error {
	c.keys = append(c.keys, key)
	c.values = append(c.values, value)
	return nil
}

func (c *capturingPublisher) Close() error { return nil }

var author = &user.User{ID: 1, Userid: "abcd", Name: "A"}

func TestCreateStampsAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, kafka.Noop{})

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.AuthorID)
	assert.Equal(t, "abcd", p.Userid)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, "hello world", p.Text)
}

func TestCreatePublishesEvent(t *testing.T) {
	repo := newFakeRepo()
	pub := &capturingPublisher{}
	svc := NewService(repo, pub)

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)
	require.Len(t, pub.values, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal(pub.values[0], &event))
	assert.Equal(t, float64(p.ID), event["id"])
	assert.Equal(t, "abcd", event["userid"])
	assert.Equal(t, "hello world", event["text"])
}

func TestUpdateByAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, kafka.Noop{})

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)

	updated, err := svc.Update(p.ID, author.ID, "edited text")
	require.NoError(t, err)
	assert.Equal(t, "edited text", updated.Text)

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited text", got.Text)
}

func TestUpdateByStrangerForbidden(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, kafka.Noop{})

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)

	_, err = svc.Update(p.ID, author.ID+1, "edited text")
	assert.ErrorIs(t, err, ErrForbidden)

	got, _ := svc.GetByID(p.ID)
	assert.Equal(t, "hello world", got.Text)
}

func TestUpdateMissing(t *testing.T) {
	svc := NewService(newFakeRepo(), kafka.Noop{})
	_, err := svc.Update(99, 1, "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, kafka.Noop{})

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(p.ID, author.ID))
	_, err = svc.GetByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByStrangerForbidden(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, kafka.Noop{})

	p, err := svc.Create(author, "hello world")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(p.ID, author.ID+1), ErrForbidden)
	_, err = svc.GetByID(p.ID)
	assert.NoError(t, err)
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepo(), kafka.Noop{})
	assert.ErrorIs(t, svc.Delete(99, 1), ErrNotFound)
}

package user

import (
	"bytes"
	"encoding/gob"

	"github.com/allegro/bigcache/v3"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

const (
	userKeyPrefix    = "user:"
	pendingKeyPrefix = "pending:"
)

var ErrUserNotFound = errors.New("user not found")

// Pending is a registration waiting for its verification code.
type Pending struct {
	Name  string
	Email string
	Phone string
	Role  Role
}

// Repository keeps signed-in users for the lifetime of their session. Entries
// expire with the cache life window and are removed on logout.
type Repository struct {
	cache *bigcache.BigCache
}

func NewRepository(cache *bigcache.BigCache) *Repository {
	return &Repository{cache}
}

func (r *Repository) Save(u User) error {
	buf := &bytes.Buffer{}
	if err := gob.NewEncoder(buf).Encode(u); err != nil {
		return errors.Wrap(err, "encode user")
	}
	return r.cache.Set(userKeyPrefix+u.ID, buf.Bytes())
}

func (r *Repository) Get(id string) (User, error) {
	u := User{}
	raw, err := r.cache.Get(userKeyPrefix + id)
	if err == bigcache.ErrEntryNotFound {
		return u, errors.Wrapf(ErrUserNotFound, "id %s", id)
	}
	if err != nil {
		return u, err
	}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&u); err != nil {
		return u, errors.Wrap(err, "decode user")
	}
	return u, nil
}

func (r *Repository) Delete(id string) error {
	err := r.cache.Delete(userKeyPrefix + id)
	if err == bigcache.ErrEntryNotFound {
		return nil
	}
	return err
}

// ToggleSavedJob flips jobID in the saved list of user id and persists the
// result, returning the updated user and whether the job is now saved.
func (r *Repository) ToggleSavedJob(id, jobID string) (User, bool, error) {
	u, err := r.Get(id)
	if err != nil {
		return u, false, err
	}
	saved := u.ToggleSavedJob(jobID)
	if err := r.Save(u); err != nil {
		return u, false, err
	}
	return u, saved, nil
}

// SavePending stores a registration until it is verified and returns the
// token identifying it.
func (r *Repository) SavePending(p Pending) (string, error) {
	k, err := ksuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "generate pending token")
	}
	buf := &bytes.Buffer{}
	if err := gob.NewEncoder(buf).Encode(p); err != nil {
		return "", errors.Wrap(err, "encode pending registration")
	}
	if err := r.cache.Set(pendingKeyPrefix+k.String(), buf.Bytes()); err != nil {
		return "", err
	}
	return k.String(), nil
}

func (r *Repository) GetPending(token string) (Pending, error) {
	p := Pending{}
	raw, err := r.cache.Get(pendingKeyPrefix + token)
	if err == bigcache.ErrEntryNotFound {
		return p, errors.Wrapf(ErrUserNotFound, "pending registration %s", token)
	}
	if err != nil {
		return p, err
	}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&p); err != nil {
		return p, errors.Wrap(err, "decode pending registration")
	}
	return p, nil
}

func (r *Repository) DeletePending(token string) error {
	err := r.cache.Delete(pendingKeyPrefix + token)
	if err == bigcache.ErrEntryNotFound {
		return nil
	}
	return err
}

func (r *Repository) SavedJobIDs(id string) ([]string, error) {
	u, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return append([]string{}, u.SavedJobIDs...), nil
}

package repos

import (
	"strings"

	"github.com/pkg/errors"

	"marketplace/internal/domain"
	"marketplace/internal/store"
	"marketplace/internal/validate"
)

type UserRepo struct{ *Repo[domain.User] }

func NewUserRepo(st store.Store) *UserRepo {
	return &UserRepo{newRepo(st, store.Users,
		func(u domain.User) int { return u.ID },
		func(u *domain.User, id int) { u.ID = id },
	)}
}

// ByUsername matches on the normalised form, ignoring case.
func (r *UserRepo) ByUsername(name string) (domain.User, error) {
	want := normUsername(name)
	for _, u := range r.recs {
		if normUsername(u.Username) == want {
			return u, nil
		}
	}
	return domain.User{}, errors.Wrapf(domain.ErrNotFound, "user %q", validate.Username(name))
}

// DisplayName is the username for id, or "unknown" when the user is gone.
func (r *UserRepo) DisplayName(id int) string {
	if u, err := r.FindByID(id); err == nil {
		return u.Username
	}
	return "unknown"
}

func normUsername(s string) string {
	return strings.ToLower(validate.Username(s))
}

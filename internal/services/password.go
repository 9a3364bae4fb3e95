package services

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/domain"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// PasswordManager turns a typed password into the value stored in the
// users table and checks a login attempt against it.
type PasswordManager interface {
	Hash(plain string) (string, error)
	Check(stored, plain string) bool
}

// PlainPasswords stores passwords as typed and compares them exactly.
// It is the default because existing users.csv files hold plain text.
type PlainPasswords struct{}

func (PlainPasswords) Hash(plain string) (string, error) { return plain, nil }

func (PlainPasswords) Check(stored, plain string) bool { return stored == plain }

// BcryptPasswords is the opt-in hashed scheme. Users registered under the
// plain scheme cannot log in once it is switched on.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errors.Wrapf(domain.ErrValidation, "hash password: %v", err)
	}
	return string(h), nil
}

func (b BcryptPasswords) Check(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

func NewPasswordManager(scheme string) (PasswordManager, error) {
	switch scheme {
	case "", SchemePlain:
		return PlainPasswords{}, nil
	case SchemeBcrypt:
		return BcryptPasswords{}, nil
	default:
		return nil, errors.Wrapf(domain.ErrValidation, "unknown password scheme %q (want %s or %s)", scheme, SchemePlain, SchemeBcrypt)
	}
}

package services

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"marketplace/internal/domain"
	"marketplace/internal/repos"
	"marketplace/internal/validate"
)

// Session is one logged-in user. The id is only meaningful to this process.
type Session struct {
	ID   string
	User domain.User
}

type AuthService struct {
	Users     *repos.UserRepo
	Passwords PasswordManager

	sessions map[string]int
}

func NewAuthService(users *repos.UserRepo, pw PasswordManager) *AuthService {
	if pw == nil {
		pw = PlainPasswords{}
	}
	return &AuthService{Users: users, Passwords: pw, sessions: map[string]int{}}
}

// Register stores a new user under the Title Case form of username.
func (s *AuthService) Register(username, password string) (domain.User, error) {
	name := validate.Username(username)
	if name == "" || password == "" {
		return domain.User{}, errors.Wrap(domain.ErrValidation, "username and password cannot be empty")
	}
	if _, err := s.Users.ByUsername(name); err == nil {
		return domain.User{}, errors.Wrapf(domain.ErrConflict, "username %q already exists", name)
	}
	stored, err := s.Passwords.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	u := s.Users.Add(domain.User{Username: name, Password: stored})
	if err := s.Users.Persist(); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Login checks the credentials and opens a session. Unknown users and wrong
// passwords fail the same way.
func (s *AuthService) Login(username, password string) (Session, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil || !s.Passwords.Check(u.Password, password) {
		return Session{}, domain.ErrAuthentication
	}
	sid := uuid.NewString()
	s.sessions[sid] = u.ID
	return Session{ID: sid, User: u}, nil
}

func (s *AuthService) Logout(sid string) {
	delete(s.sessions, sid)
}

// CurrentUser resolves the user behind sid.
func (s *AuthService) CurrentUser(sid string) (domain.User, error) {
	id, ok := s.sessions[sid]
	if !ok {
		return domain.User{}, errors.Wrap(domain.ErrAuthentication, "not logged in")
	}
	return s.Users.FindByID(id)
}

package cli

import (
	"marketplace/internal/log"
	"marketplace/internal/services"
	"marketplace/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Register(t *Term) error {
	name, err := t.Text("Username (stored in Title Case)", false)
	if err != nil {
		return err
	}
	pass, err := t.Text("Password", false)
	if err != nil {
		return err
	}
	u, err := h.Auth.Register(name, pass)
	if err != nil {
		t.report("auth.register", err, map[string]any{"username": validate.Username(name)})
		return nil
	}
	log.Audit("auth.register", map[string]any{"user_id": u.ID, "username": u.Username})
	t.Printf("Registered: %s (User ID: %d)\n", u.Username, u.ID)
	return nil
}

// Login returns nil without an error when the credentials were rejected.
func (h *AuthHandler) Login(t *Term) (*services.Session, error) {
	name, err := t.Text("Username", false)
	if err != nil {
		return nil, err
	}
	pass, err := t.Text("Password", false)
	if err != nil {
		return nil, err
	}
	sess, err := h.Auth.Login(name, pass)
	if err != nil {
		t.report("auth.login", err, map[string]any{"username": validate.Username(name)})
		return nil, nil
	}
	log.Audit("auth.login.success", sessionFields(sess, nil))
	t.Printf("Logged in as %s\n", sess.User.Username)
	return &sess, nil
}

func (h *AuthHandler) Logout(t *Term, sess services.Session) {
	h.Auth.Logout(sess.ID)
	log.Audit("auth.logout", sessionFields(sess, nil))
	t.Println("Logged out.")
}

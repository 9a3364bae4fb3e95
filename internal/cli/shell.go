// Package cli is the interactive menu over the marketplace services. It owns
// the current session and turns core errors into messages; it holds no
// business rules of its own.
package cli

import (
	"io"

	"github.com/pkg/errors"

	"marketplace/internal/log"
	"marketplace/internal/services"
)

type Shell struct {
	term *Term
	deps *Deps
	sess *services.Session
}

func NewShell(in io.Reader, out io.Writer, deps *Deps) *Shell {
	return &Shell{term: NewTerm(in, out), deps: deps}
}

// Run serves menus until the user quits or input ends.
func (s *Shell) Run() error {
	for {
		var quit bool
		var err error
		if s.sess == nil {
			quit, err = s.mainMenu()
		} else {
			err = s.userMenu()
		}
		switch {
		case errors.Is(err, io.EOF):
			log.Info("shell.eof", nil)
			return nil
		case errors.Is(err, errBack):
		case err != nil:
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) mainMenu() (bool, error) {
	t := s.term
	t.Println("\n=== Second-hand Marketplace ===")
	t.Println("1) Register")
	t.Println("2) Login")
	t.Println("3) View all active listings")
	t.Println("4) Search by category")
	t.Println("5) Search by full name")
	t.Println("0) Quit")
	cmd, err := t.Choose()
	if err != nil {
		return false, err
	}

	switch cmd {
	case "1":
		return false, s.deps.AuthHandler.Register(t)
	case "2":
		sess, err := s.deps.AuthHandler.Login(t)
		s.sess = sess
		return false, err
	case "3":
		s.deps.ListingHandler.Active(t)
	case "4":
		return false, s.deps.ListingHandler.SearchCategory(t)
	case "5":
		return false, s.deps.ListingHandler.SearchName(t)
	case "0":
		t.Println("Goodbye ~\nSee you later!")
		return true, nil
	default:
		t.Println("Invalid command.")
	}
	return false, nil
}

func (s *Shell) userMenu() error {
	t := s.term
	auth := s.deps.AuthHandler
	u, err := auth.Auth.CurrentUser(s.sess.ID)
	if err != nil {
		t.report("auth.session", err, sessionFields(*s.sess, nil))
		s.sess = nil
		return nil
	}
	sess := services.Session{ID: s.sess.ID, User: u}

	t.Printf("\n=== Welcome, %s ===\n", u.Username)
	t.Println("1) Post a new listing")
	t.Println("2) All my listings")
	t.Println("3) Buy a listing")
	t.Println("4) Delete my listing")
	t.Println("5) View all active listings")
	t.Println("6) My orders (as buyer)")
	t.Println("7) Orders for my listings (as seller)")
	t.Println("0) Logout")
	cmd, err := t.Choose()
	if err != nil {
		return err
	}

	switch cmd {
	case "1":
		return s.deps.ListingHandler.Post(t, sess)
	case "2":
		s.deps.ListingHandler.Mine(t, sess)
	case "3":
		return s.deps.OrderHandler.Buy(t, sess)
	case "4":
		return s.deps.ListingHandler.Delete(t, sess)
	case "5":
		s.deps.ListingHandler.Active(t)
	case "6":
		s.deps.OrderHandler.AsBuyer(t, sess)
	case "7":
		s.deps.OrderHandler.AsSeller(t, sess)
	case "0":
		auth.Logout(t, sess)
		s.sess = nil
	default:
		t.Println("Invalid command.")
	}
	return nil
}

package domain

// User.Password holds whatever the configured PasswordManager produced.
// With the default scheme that is the plain text the user typed.
type User struct {
	ID       int
	Username string
	Password string
}

package entities

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID       int64
	Username string
	FullName string
	Role     Role
}

// DisplayName prefers the full name and falls back to the username,
// matching what every surface renders in the header.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Session is the authenticated identity and credential currently held by the
// client. A non-nil in-memory session always mirrors the durable credential
// record except during the atomic create/destroy transitions.
type Session struct {
	AccessToken string
	User        User
}

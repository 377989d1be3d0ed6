package auth

// Back-office roles. ADMIN manages the office; AGENT is the default for
// self-registered staff and cannot reach /admin routes.
const (
	RoleAdmin = "ADMIN"
	RoleAgent = "AGENT"
)

// User is the back-office account entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

package user

const (
	RoleProfessor   = "professor"
	RoleCoordinator = "coordenador"
)

// User is the authenticated principal. IDs are always strings inside the
// service; see remoteUser for the coercion at the directory boundary.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) IsCoordinator() bool {
	return u.Role == RoleCoordinator
}

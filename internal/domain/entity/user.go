package entity

// User represents a registered member of the community roster.
type User struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	DisplayName        string   `json:"displayName"`
	PhotoURL           string   `json:"photoURL"`
	Role               Role     `json:"role"`
	FavoriteCategories []string `json:"favoriteCategories,omitempty"`
}

// Role is the ranked role of a user. The display values are kept in Spanish
// because they double as the persisted representation.
type Role string

const (
	RoleUsuario         Role = "Usuario"
	RoleDisenador       Role = "Diseñador"
	RoleAyudante        Role = "Ayudante"
	RoleAdminSecundario Role = "Admin Secundario"
	RoleAdminPrimario   Role = "Admin Primario"
)

// roleRank assigns each role its position in the hierarchy. Unknown roles
// rank below every known one.
var roleRank = map[Role]int{
	RoleUsuario:         0,
	RoleDisenador:       1,
	RoleAyudante:        2,
	RoleAdminSecundario: 3,
	RoleAdminPrimario:   4,
}

// Rank returns the numeric rank of the role, or -1 for an unknown role.
func (r Role) Rank() int {
	if rank, ok := roleRank[r]; ok {
		return rank
	}
	return -1
}

// AllRoles lists every role in ascending rank order.
func AllRoles() []Role {
	return []Role{RoleUsuario, RoleDisenador, RoleAyudante, RoleAdminSecundario, RoleAdminPrimario}
}

func DefaultRole() Role {
	return RoleUsuario
}

// IsAdmin reports whether the user holds either administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdminPrimario || u.Role == RoleAdminSecundario
}

// IsPrimaryAdmin reports whether the user is the primary administrator.
func (u User) IsPrimaryAdmin() bool {
	return u.Role == RoleAdminPrimario
}

// AuthorSnapshot is the denormalized author identity stamped onto forum
// threads, comments and chat messages at write time. Later profile edits
// never alter records carrying a snapshot.
type AuthorSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// Snapshot captures the user's display identity at the current moment.
func (u User) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{ID: u.ID, Name: u.DisplayName, PhotoURL: u.PhotoURL}
}

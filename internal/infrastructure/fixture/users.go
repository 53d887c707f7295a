// Package fixture holds the seed data written into a collection the first
// time it is observed absent.
package fixture

import "github.com/desparches/backend/internal/domain/entity"

// Users returns the initial roster: the bootstrap primary administrator and
// one plain test account.
func Users() []entity.User {
	return []entity.User{
		{
			ID:                 "admin001",
			Email:              "admin01@gmail.com",
			DisplayName:        "Rafael Ricardo",
			PhotoURL:           "https://ui-avatars.com/api/?name=Admin+User&background=0D8ABC&color=fff",
			Role:               entity.RoleAdminPrimario,
			FavoriteCategories: []string{"musica", "arte"},
		},
		{
			ID:                 "user001",
			Email:              "usuario@example.com",
			DisplayName:        "Usuario de Prueba",
			PhotoURL:           "https://ui-avatars.com/api/?name=Test+User&background=random",
			Role:               entity.RoleUsuario,
			FavoriteCategories: []string{"gastronomia"},
		},
	}
}

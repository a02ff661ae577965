package auth

import "github.com/BruksfildServices01/shelter-adoption/internal/httperr"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAdopter Role = "adoptante"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAdopter
}

// Actor es quien ejecuta el caso de uso (viene del token).
type Actor struct {
	ProfileID uint
	Role      Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RequireAdmin se llama dentro de cada caso de uso administrativo,
// además del middleware de rutas.
func RequireAdmin(a Actor) error {
	if a.ProfileID == 0 {
		return httperr.Unauthenticated("not_authenticated")
	}
	if !a.IsAdmin() {
		return httperr.Forbidden("admin_only")
	}
	return nil
}

// RequireOwnerOrAdmin permite al dueño del recurso o a un admin.
func RequireOwnerOrAdmin(a Actor, ownerID uint) error {
	if a.ProfileID == 0 {
		return httperr.Unauthenticated("not_authenticated")
	}
	if a.IsAdmin() || a.ProfileID == ownerID {
		return nil
	}
	return httperr.Forbidden("not_owner")
}

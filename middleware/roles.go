package middleware

import (
	"net/http"

	"showsvc/globals"

	"github.com/julienschmidt/httprouter"
)

// A permission is "resource:action:possession", e.g. "shows:update:any".
// roleGrants maps a role to the permissions it holds.
var roleGrants = map[string][]string{
	"user": {
		"shows:read:any",
	},
	"admin": {
		"shows:read:any",
		"shows:create:any",
		"shows:update:any",
		"shows:delete:any",
	},
}

func rolesGrant(roles []string, perm string) bool {
	for _, role := range roles {
		for _, granted := range roleGrants[role] {
			if granted == perm {
				return true
			}
		}
	}
	return false
}

// RequireRoles enforces that the authenticated principal holds every listed
// permission. Must run after Authenticate, which puts the roles in context.
func RequireRoles(next httprouter.Handle, perms ...string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roles, _ := r.Context().Value(globals.RoleKey).([]string)
		for _, perm := range perms {
			if !rolesGrant(roles, perm) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}
		next(w, r, ps)
	}
}

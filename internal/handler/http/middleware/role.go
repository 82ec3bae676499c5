package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/handler/http/response"
)

// ActorFromContext builds the acting identity from the verified token claims.
func ActorFromContext(ctx context.Context) (identity.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return identity.Actor{}, err
	}

	userID, _ := claims["user_id"].(string)
	employeeID, _ := claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)

	role, err := identity.ParseRole(roleStr)
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.Actor{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
	}, nil
}

// RequireRoles allows the request through only when the token role is one of
// the given roles.
func RequireRoles(roles ...identity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions: role '%s' not allowed", actor.Role))
		})
	}
}

// RequireHR restricts a route to HR staff and admins.
func RequireHR(next http.Handler) http.Handler {
	return RequireRoles(identity.RoleHR, identity.RoleAdmin)(next)
}

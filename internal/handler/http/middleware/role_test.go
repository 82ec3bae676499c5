package middleware

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hr-backend-go/internal/domain/identity"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorFromContext_RoundTrip(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "hr@example.com", "emp-1", identity.RoleHR)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	actor, err := ActorFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", actor.UserID)
	assert.Equal(t, "emp-1", actor.EmployeeID)
	assert.Equal(t, identity.RoleHR, actor.Role)
}

func TestActorFromContext_RejectsUnknownRole(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "x@example.com", "emp-1", identity.Role("superuser"))
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	_, err = ActorFromContext(ctx)
	assert.ErrorIs(t, err, identity.ErrUnknownRole)
}

package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type ctxKey int

const principalKey ctxKey = iota + 1

// Principal is the user resolved from the bearer token of the current request.
type Principal struct {
	UserID int64
	Role   string
}

var ErrNoPrincipal = errors.New("unauthenticated")

func SetAuthContext(ctx context.Context, userID int64, role string) context.Context {
	return context.WithValue(ctx, principalKey, Principal{UserID: userID, Role: role})
}

func GetPrincipal(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}

func IsAdmin(ctx context.Context) bool {
	p, err := GetPrincipal(ctx)
	return err == nil && p.Role == RoleAdmin
}

// CanActFor reports whether the caller is the given user or an admin.
func CanActFor(ctx context.Context, userID int64) bool {
	p, err := GetPrincipal(ctx)
	if err != nil {
		return false
	}
	return p.Role == RoleAdmin || p.UserID == userID
}

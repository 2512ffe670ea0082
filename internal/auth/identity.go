package auth

import "context"

// Identity is the authenticated caller as resolved from its access token.
type Identity struct {
	UserID      int
	Username    string
	Email       string
	Groups      []string
	IsSuperuser bool
}

// InGroup reports whether the identity belongs to the named group.
func (id Identity) InGroup(name string) bool {
	for _, g := range id.Groups {
		if g == name {
			return true
		}
	}
	return false
}

type ctxKey string

const identityKey ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the caller identity, if any, from the request context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

package entity

import "context"

type (
	CtxKeyPrincipal struct{}
	CtxKeyIP        struct{}
)

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal{}, p)
}

func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal{}).(Principal)
	return p, ok
}

func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, CtxKeyIP{}, ip)
}

func IPFromCtx(ctx context.Context) string {
	ip, ok := ctx.Value(CtxKeyIP{}).(string)
	if !ok {
		return ""
	}

	return ip
}

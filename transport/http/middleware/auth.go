package middleware

import (
	"context"
	"net/http"

	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/infras/session"
	"taskdesk/shared/constant"
	"taskdesk/shared/failure"
	"taskdesk/transport/http/response"
)

// Auth guards routes behind a resolved session. API responds with a JSON
// error body; Page redirects the browser to the login form.
type Auth interface {
	API(http.Handler) http.Handler
	Page(http.Handler) http.Handler
}

type authImpl struct {
	session session.Session
	otel    otel.Otel
	cfg     *config.Config
}

func NewAuthMiddleware(session session.Session, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		session: session,
		otel:    otel,
		cfg:     cfg,
	}
}

// API rejects requests without a valid session cookie with 401.
func (m *authImpl) API(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		identity, err := m.resolve(request)
		if err != nil {
			err := failure.Unauthorized("Authentication required")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(withIdentity(ctx, identity)))
	})
}

// Page sends unauthenticated browsers to the login form instead of a JSON
// error body.
func (m *authImpl) Page(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.page.middleware")

		identity, err := m.resolve(request)
		if err != nil {
			scope.End()
			http.Redirect(writer, request, "/login", http.StatusSeeOther)

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(withIdentity(ctx, identity)))
	})
}

func (m *authImpl) resolve(request *http.Request) (session.Identity, error) {
	cookie, err := request.Cookie(m.cfg.Session.CookieName)
	if err != nil {
		return session.Identity{}, session.ErrNoSession
	}

	return m.session.Resolve(request.Context(), cookie.Value)
}

func withIdentity(ctx context.Context, identity session.Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, identity.Username)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)

	return ctx
}

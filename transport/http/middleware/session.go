package middleware

import (
	"net/http"

	"tripbook/infras/otel"
	"tripbook/internal/domains/session/model"
	"tripbook/internal/domains/session/service"
	"tripbook/shared/constant"
	"tripbook/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Session attaches the signed-in shopper to the request context.
type Session interface {
	// Authenticate rejects requests without a live session.
	Authenticate(next http.Handler) http.Handler
	// Identify attaches a session when one is presented and lets anonymous requests through.
	Identify(next http.Handler) http.Handler
}

type sessionImpl struct {
	sessions service.Session
	otel     otel.Otel
}

func NewSessionMiddleware(sessions service.Session, otel otel.Otel) Session {
	return &sessionImpl{
		sessions: sessions,
		otel:     otel,
	}
}

func (m *sessionImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.authenticate")

		session, err := m.sessions.Authenticate(ctx, r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			scope.End()

			response.WithError(w, err)

			return
		}

		scope.SetAttribute("session.user_id", session.UserID)
		scope.End()

		next.ServeHTTP(w, r.WithContext(model.WithSession(r.Context(), session)))
	})
}

func (m *sessionImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.identify")
		defer scope.End()

		session, err := m.sessions.Authenticate(ctx, header)
		if err != nil {
			log.Debug().Err(err).Msg("continuing without session")
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(model.WithSession(r.Context(), session)))
	})
}

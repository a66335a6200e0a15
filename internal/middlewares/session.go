package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-service/internal/logger"
)

// SessionMiddleware holds one pooled connection for the duration of the
// request. Repositories run their own transactions on it. The connection is
// always released, also when the handler panics.
func SessionMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := db.Connx(r.Context())
			if err != nil {
				logger.Log.Errorw("failed to acquire database session", "error", err)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			defer func() {
				if err := conn.Close(); err != nil {
					logger.Log.Errorw("failed to release database session", "error", err)
				}
			}()

			ctx := setSessionToContext(r.Context(), conn)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type sessionKey struct{}

// setSessionToContext stores a session in the context
func setSessionToContext(ctx context.Context, conn *sqlx.Conn) context.Context {
	return context.WithValue(ctx, sessionKey{}, conn)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *sqlx.Conn {
	conn, _ := ctx.Value(sessionKey{}).(*sqlx.Conn)
	return conn
}

package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/shared"
	"taskdesk/shared/cache"
	"taskdesk/shared/constant"

	"github.com/google/uuid"
)

var (
	ErrNoSession = errors.New("no active session")
)

// Identity is the payload bound to a session token.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session issues opaque tokens for authenticated users. Tokens carry no
// information themselves; the identity lives server-side with a TTL, so a
// token disappears from existence on logout or expiry.
type Session interface {
	Start(ctx context.Context, identity Identity) (string, error)
	Resolve(ctx context.Context, token string) (Identity, error)
	End(ctx context.Context, token string) error
}

type serviceImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, identity Identity) (token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	token = uuid.NewString()

	if err = s.cache.Save(ctx, s.key(token), identity, s.ttlSeconds()); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, token string) (identity Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Resolve")
	defer scope.End()

	if token == "" {
		return identity, ErrNoSession
	}

	err = s.cache.Get(ctx, s.key(token), &identity)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return identity, ErrNoSession
		}

		scope.TraceError(err)

		return identity, fmt.Errorf("failed to resolve session: %w", err)
	}

	return identity, nil
}

func (s *serviceImpl) End(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".End")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == "" {
		return nil
	}

	if err = s.cache.Delete(ctx, s.key(token)); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

func (s *serviceImpl) key(token string) string {
	return shared.BuildCacheKey(constant.SessionKeyPrefix, token)
}

func (s *serviceImpl) ttlSeconds() int {
	return s.cfg.Session.TTLMinutes * constant.MinutesToSeconds
}

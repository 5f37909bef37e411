package service

import (
	"context"
	"fmt"
	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/infras/session"
	"taskdesk/internal/domains/auth/model/dto"
	userModel "taskdesk/internal/domains/user/model"
	userRepo "taskdesk/internal/domains/user/repository"
	"taskdesk/shared"
	"taskdesk/shared/constant"
	"taskdesk/shared/failure"
	"taskdesk/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type serviceImpl struct {
	userRepo userRepo.User
	session  session.Session
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, session session.Session, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		session:  session,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := shared.FilterByField(userModel.FieldEmail, req.Email, userModel.TableName)

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration implies login.
	token, err := s.startSession(ctx, user)
	if err != nil {
		return res, err
	}

	return dto.AuthResponse{Token: token, UserID: user.ID, Username: user.Username}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := shared.FilterByField(userModel.FieldEmail, req.Email, userModel.TableName)

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// One generic failure for unknown email and wrong password alike.
	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return res, err
	}

	return dto.AuthResponse{Token: token, UserID: user.ID, Username: user.Username}, nil
}

func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.session.End(ctx, token); err != nil {
		log.Warn().Err(err).Msg("failed to end session")

		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

func (s *serviceImpl) startSession(ctx context.Context, user userModel.User) (string, error) {
	token, err := s.session.Start(ctx, session.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start session")

		return "", fmt.Errorf("failed to start session: %w", err)
	}

	return token, nil
}

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/agriconnect/agriconnect-backend/internal/users"
	pkgauth "github.com/agriconnect/agriconnect-backend/pkg/auth"
	"github.com/agriconnect/agriconnect-backend/pkg/auth/session"
	"github.com/agriconnect/agriconnect-backend/pkg/config"
	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
	pkgerrors "github.com/agriconnect/agriconnect-backend/pkg/errors"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
	"github.com/agriconnect/agriconnect-backend/pkg/security"
)

// Service implements account registration, login and logout.
type Service struct {
	repo     *users.Repository
	sessions *session.Manager
	validate *validator.Validate
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	logg     *logger.Logger
	now      func() time.Time
}

func NewService(
	repo *users.Repository,
	sessions *session.Manager,
	validate *validator.Validate,
	jwtCfg config.JWTConfig,
	pwCfg config.PasswordConfig,
	logg *logger.Logger,
) *Service {
	if validate == nil {
		validate = validator.New()
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		validate: validate,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		logg:     logg,
		now:      time.Now,
	}
}

// Register creates the account and immediately opens a session for it.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*SessionView, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid registration payload")
	}

	role := enums.UserRole(input.Role)
	if input.Role == "" {
		role = enums.UserRoleBuyer
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown user role")
	}

	existing, err := s.repo.ByEmail(ctx, input.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking email")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}

	view, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user registered")
	}
	return view, nil
}

// Login verifies the credentials and opens a session. Unknown emails and wrong
// passwords yield the same unauthorized error.
func (s *Service) Login(ctx context.Context, input LoginInput) (*SessionView, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid login payload")
	}

	user, err := s.repo.ByEmail(ctx, input.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if user == nil || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithUserID(ctx, user.ID.String()), "recording last login failed")
	}

	view, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "user logged in")
	}
	return view, nil
}

// Logout revokes the access session so the token stops working immediately.
func (s *Service) Logout(ctx context.Context, accessID string) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoking session")
	}
	return nil
}

// CurrentUser resolves the authenticated user's profile.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.ByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	if user == nil || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account unavailable")
	}
	return user, nil
}

func (s *Service) openSession(ctx context.Context, user *models.User) (*SessionView, error) {
	jti := uuid.NewString()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    jti,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}

	if s.sessions != nil {
		if err := s.sessions.Register(ctx, jti, user.ID.String()); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering session")
		}
	}

	return &SessionView{
		Token: token,
		User:  users.NewProfileView(*user),
	}, nil
}

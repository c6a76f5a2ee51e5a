package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/users-service/models"
	"projectflow/backend/users-service/repositories"
	"projectflow/backend/users-service/utils"
	sharedutils "projectflow/backend/utils"

	"golang.org/x/crypto/bcrypt"
)

const DashboardRedirect = "/dashboard"

var (
	ErrPasswordMismatch   = errors.New("Las contraseñas no coinciden")
	ErrMissingFields      = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnknownRole        = errors.New("unknown role")
)

type UserService struct {
	users      repositories.UserRepository
	sessions   repositories.SessionStore
	jwtService *JWTService
	demo       []models.DemoAccount
	delay      time.Duration
	sessionTTL time.Duration
}

func NewUserService(users repositories.UserRepository, sessions repositories.SessionStore, jwtService *JWTService, delay, sessionTTL time.Duration) *UserService {
	return &UserService{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
		demo:       DemoAccounts(),
		delay:      delay,
		sessionTTL: sessionTTL,
	}
}

// LoginUser checks the demo accounts first and the user store second. On
// success the token and user are written as the session record.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (models.LoginResponse, error) {
	return sharedutils.Simulate(ctx, s.delay, func() (models.LoginResponse, error) {
		token, user, err := s.authenticate(ctx, email, password)
		if err != nil {
			return models.LoginResponse{}, err
		}

		session := models.Session{AccessToken: token, UserData: user}
		if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
			return models.LoginResponse{}, fmt.Errorf("failed to store session: %w", err)
		}

		logging.Logger.Infof("Event ID: USER_LOGIN, Description: User %s logged in", user.Email)
		return models.LoginResponse{
			Data:     models.LoginData{AccessToken: token, User: user},
			Redirect: DashboardRedirect,
		}, nil
	})
}

func (s *UserService) authenticate(ctx context.Context, email, password string) (string, models.User, error) {
	for _, account := range s.demo {
		if account.Email == email && account.Password == password {
			return account.Token, account.User, nil
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAuthToken(*user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, *user, nil
}

// RegisterUser rejects mismatched passwords before anything else, without the simulated wait.
func (s *UserService) RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	roleKey := req.Role
	if roleKey == "" {
		roleKey = defaultRegistrationRole
	}
	role, ok := registrationRoles[roleKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, req.Role)
	}

	if s.isDemoEmail(email) {
		return nil, repositories.ErrEmailTaken
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	return sharedutils.Simulate(ctx, s.delay, func() (*models.User, error) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		now := time.Now()
		user := models.User{
			Email:              email,
			FirstName:          html.EscapeString(req.FirstName),
			LastName:           html.EscapeString(req.LastName),
			Company:            html.EscapeString(req.Company),
			Role:               role,
			Password:           string(hashedPassword),
			VerificationCode:   utils.GenerateVerificationCode(),
			VerificationExpiry: now.Add(24 * time.Hour),
			CreatedAt:          now,
		}

		created, err := s.users.Create(ctx, user)
		if err != nil {
			return nil, err
		}
		logging.Logger.Infof("Event ID: USER_REGISTERED, Description: Registered user %s with role %s", created.Email, created.Role.Name)
		return created, nil
	})
}

func (s *UserService) isDemoEmail(email string) bool {
	for _, account := range s.demo {
		if strings.EqualFold(account.Email, email) {
			return true
		}
	}
	return false
}

func (s *UserService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	return s.sessions.Get(ctx, token)
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	logging.Logger.Info("Event ID: USER_LOGOUT, Description: Session removed")
	return nil
}

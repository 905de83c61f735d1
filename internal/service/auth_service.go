package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightforge/erp/internal/config"
	"github.com/brightforge/erp/internal/entity"
	"github.com/brightforge/erp/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues bearer tokens for dashboard users and keeps the session
// registry in redis. Token verification itself is stateless (the middleware
// checks the signature); redis only answers "is this session still alive" for
// the check endpoint and logout.
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// SessionUser is the authenticated identity echoed to the dashboard.
type SessionUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the signed token and the user it belongs to.
type LoginResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// ErrInvalidCredentials is returned for both unknown users and wrong
// passwords so the response does not reveal which.
var ErrInvalidCredentials = errors.New("invalid username or password")

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	now := time.Now()
	expiry := s.cfg.JWT.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"uid":      user.ID,
		"username": user.Username,
		"jti":      sessionID,
		"iat":      now.Unix(),
		"exp":      now.Add(expiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if s.rdb != nil {
		key := sessionKey(sessionID)
		if err := s.rdb.Set(ctx, key, user.ID, expiry).Err(); err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}

	return &LoginResult{
		Token: token,
		User:  SessionUser{ID: user.ID, Username: user.Username},
	}, nil
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Register(req RegisterRequest) (uint, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return 0, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return 0, &ValidationError{Message: "Username already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{Username: req.Username, Password: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// Logout drops the session record. The token keeps verifying until expiry;
// only the session registry forgets it.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	sessionID, _, err := s.parseToken(tokenString)
	if err != nil {
		return &ValidationError{Message: "Invalid token"}
	}
	if s.rdb != nil && sessionID != "" {
		if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
			return fmt.Errorf("drop session: %w", err)
		}
	}
	return nil
}

// Check reports whether the presented token belongs to a live session.
func (s *AuthService) Check(ctx context.Context, tokenString string) (*SessionUser, bool) {
	if tokenString == "" {
		return nil, false
	}
	sessionID, user, err := s.parseToken(tokenString)
	if err != nil {
		return nil, false
	}
	if s.rdb != nil {
		if _, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result(); err != nil {
			return nil, false
		}
	}
	return user, true
}

func (s *AuthService) parseToken(tokenString string) (string, *SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, errors.New("unexpected claims type")
	}

	user := &SessionUser{}
	if uid, ok := claims["uid"].(float64); ok {
		user.ID = uint(uid)
	}
	if name, ok := claims["username"].(string); ok {
		user.Username = name
	}
	sessionID, _ := claims["jti"].(string)
	return sessionID, user, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

package auth

import (
	"fmt"
	"strings"

	"github.com/sociable/sociableapi/api/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users    *user.Repository
	sessions SessionStore
}

func NewService(users *user.Repository, sessions SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

// Sessions exposes the injected session store to middleware
func (s *Service) Sessions() SessionStore {
	return s.sessions
}

// RegisterRequest is the body for POST /api/auth/register
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Work      string `json:"work"`
}

// LoginRequest is the body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and issues a session token
func (s *Service) Register(req RegisterRequest) (*user.UserModel, string, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, "", fmt.Errorf("username, email, firstName and lastName are required")
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("password must be at least 6 characters")
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, "", fmt.Errorf("user already exists")
	}
	if _, err := s.users.GetByUsername(req.Username); err == nil {
		return nil, "", fmt.Errorf("username is taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}

	u := &user.UserModel{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Location:  req.Location,
		Work:      req.Work,
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a session token
func (s *Service) Login(req LoginRequest) (*user.UserModel, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("email and password are required")
	}

	u, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", fmt.Errorf("invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := s.sessions.Create(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout destroys the session token
func (s *Service) Logout(token string) {
	s.sessions.Destroy(token)
}

package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already exists")
)

// Session is what login, register and guest issuance hand back.
type Session struct {
	Token     string `json:"token"`
	ShopperID string `json:"shopper_id"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type Service struct {
	repo   UserRepository
	tokens *Tokens
}

func NewService(repo UserRepository, tokens *Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// GUEST
func (s *Service) Guest() (*Session, error) {
	id := uuid.New().String()
	token, err := s.tokens.Generate(id, "", RoleGuest)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ShopperID: id, Role: RoleGuest}, nil
}

// REGISTER
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	return s.create(ctx, name, email, password, RoleCustomer)
}

// SeedAdmin makes sure the configured admin account exists.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil || exists {
		return err
	}

	_, err = s.create(ctx, "Admin", email, password, RoleAdmin)
	return err
}

func (s *Service) create(ctx context.Context, name, email, password, role string) (*User, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *Service) issue(user *User) (*Session, error) {
	token, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ShopperID: user.ID,
		Role:      user.Role,
		Name:      user.Name,
		Email:     user.Email,
	}, nil
}

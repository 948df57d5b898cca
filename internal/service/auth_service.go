package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"englishquest/internal/models"
	"englishquest/internal/repository"
	"englishquest/internal/security"
	"englishquest/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthResult is the outcome of a successful register or login
type AuthResult struct {
	Player *models.Player
	Token  string
}

// AuthService handles authentication business logic
type AuthService struct {
	playerRepo *repository.PlayerRepository
	tokens     *security.TokenManager
	email      *EmailService
}

// NewAuthService creates a new auth service
func NewAuthService(playerRepo *repository.PlayerRepository, tokens *security.TokenManager, email *EmailService) *AuthService {
	return &AuthService{
		playerRepo: playerRepo,
		tokens:     tokens,
		email:      email,
	}
}

// Register creates a new player account and issues a token
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	existing, err := s.playerRepo.GetPlayerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing player: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	player, err := s.playerRepo.CreatePlayer(email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	if s.email != nil && s.email.IsEnabled() {
		if err := s.email.SendWelcomeEmail(ctx, player.Email, player.Name); err != nil {
			// Registration succeeded either way
			log.Printf("Warning: failed to send welcome email to %s: %v", player.Email, err)
		}
	}

	return s.issueResult(player)
}

// Login authenticates a player and issues a token
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	player, err := s.playerRepo.GetPlayerByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, player.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueResult(player)
}

// OAuthLogin authenticates or creates a player from a verified OAuth identity
func (s *AuthService) OAuthLogin(subject, email, name string) (*AuthResult, error) {
	if subject == "" {
		return nil, errors.New("missing oauth subject")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayerByOAuthSubject(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup oauth player: %w", err)
	}

	if player == nil {
		existing, err := s.playerRepo.GetPlayerByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing player: %w", err)
		}
		if existing != nil {
			if existing.OAuthSubject != "" && existing.OAuthSubject != subject {
				return nil, ErrEmailTaken
			}
			if existing.OAuthSubject == "" {
				if err := s.playerRepo.LinkOAuthSubject(existing.ID, subject); err != nil {
					return nil, fmt.Errorf("failed to link oauth subject: %w", err)
				}
			}
			player = existing
		} else {
			if name == "" {
				name = strings.Split(email, "@")[0]
			}
			// OAuth-only accounts get an unguessable password
			randomHash, err := security.HashPassword(uuid.New().String())
			if err != nil {
				return nil, fmt.Errorf("failed to generate oauth password hash: %w", err)
			}
			created, err := s.playerRepo.CreatePlayer(email, randomHash, name)
			if err != nil {
				return nil, fmt.Errorf("failed to create oauth player: %w", err)
			}
			if err := s.playerRepo.LinkOAuthSubject(created.ID, subject); err != nil {
				return nil, fmt.Errorf("failed to link oauth subject: %w", err)
			}
			player = created
		}
	}

	return s.issueResult(player)
}

// VerifyToken validates a bearer token and returns the associated player
func (s *AuthService) VerifyToken(token string) (*models.Player, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayerByID(claims.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, ErrInvalidCredentials
	}

	return player, nil
}

func (s *AuthService) issueResult(player *models.Player) (*AuthResult, error) {
	token, err := s.tokens.IssueToken(player.ID, player.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Player: player, Token: token}, nil
}

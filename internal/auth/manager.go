package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tickfile-dev/tickfile/internal/apperrors"
	"github.com/tickfile-dev/tickfile/internal/models"
	"github.com/tickfile-dev/tickfile/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Session is what a successful signup or login hands back to the client.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Manager registers users, verifies credentials and mints bearer tokens.
// Tokens are opaque uuids compared by exact string match; there is no
// expiry or revocation. TokenIssuedAt is recorded so an expiry check
// could be added in Authenticate later.
type Manager struct {
	store store.Store
	cost  int
}

func NewManager(s store.Store, cost int) *Manager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 10
	}

	return &Manager{store: s, cost: cost}
}

// Signup creates a user with a hashed password, a fresh id and a fresh
// token, and persists the document. Usernames collide case-insensitively.
func (m *Manager) Signup(username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return Session{}, apperrors.New(apperrors.Validation, "username and password required")
	}

	doc := m.store.Load()

	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Username, username) {
			return Session{}, apperrors.New(apperrors.Conflict, "username already taken")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)

	if err != nil {
		return Session{}, err
	}

	issuedAt := time.Now().UTC()

	user := models.User{
		ID:            uuid.NewString(),
		Username:      username,
		PasswordHash:  string(hash),
		Token:         uuid.NewString(),
		TokenIssuedAt: &issuedAt,
		Todos:         []models.Todo{},
	}

	doc.Users = append(doc.Users, user)
	m.store.Save(doc)

	return Session{Token: user.Token, Username: user.Username}, nil
}

// Login verifies the password and returns the user's existing token.
// An unknown username and a wrong password produce the identical error,
// so responses cannot be used to enumerate accounts. A user without a
// token (should not happen, signup issues one) gets a fresh one.
func (m *Manager) Login(username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return Session{}, apperrors.New(apperrors.Validation, "username and password required")
	}

	doc := m.store.Load()

	var user *models.User

	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Username, username) {
			user = &doc.Users[i]
			break
		}
	}

	if user == nil {
		return Session{}, apperrors.New(apperrors.Auth, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, apperrors.New(apperrors.Auth, "invalid credentials")
	}

	if user.Token == "" {
		issuedAt := time.Now().UTC()
		user.Token = uuid.NewString()
		user.TokenIssuedAt = &issuedAt
		m.store.Save(doc)
	}

	return Session{Token: user.Token, Username: user.Username}, nil
}

// Authenticate resolves an Authorization header against the given
// document and returns a pointer into its user slice, so the caller's
// mutations land in the document it will later save.
func Authenticate(authHeader string, doc *models.Document) (*models.User, error) {
	if authHeader == "" {
		return nil, apperrors.New(apperrors.Auth, "missing token")
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, apperrors.New(apperrors.Auth, "missing token")
	}

	user := doc.FindUserByToken(parts[1])

	if user == nil {
		return nil, apperrors.New(apperrors.Auth, "invalid token")
	}

	return user, nil
}

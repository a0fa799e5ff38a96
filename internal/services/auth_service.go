package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	DB                   *sql.DB
	Users                repositories.UserRepository
	JWTSecret            []byte
	OperatorRegisterCode string
}

type RegisterInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	RegisterCode string `json:"registerCode"`
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.PublicUser, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	switch {
	case email == "":
		return models.PublicUser{}, domain.ValidationError{Field: "email", Msg: "is required"}
	case in.Password == "":
		return models.PublicUser{}, domain.ValidationError{Field: "password", Msg: "is required"}
	case strings.TrimSpace(in.Role) == "":
		return models.PublicUser{}, domain.ValidationError{Field: "role", Msg: "is required"}
	}

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return models.PublicUser{}, domain.ValidationError{Field: "role", Msg: "must be user or operator"}
	}
	if role == domain.RoleOperator && in.RegisterCode != s.OperatorRegisterCode {
		return models.PublicUser{}, domain.ValidationError{Field: "registerCode", Msg: "invalid operator register code"}
	}

	exists, err := s.Users.EmailExists(ctx, s.DB, email)
	if err != nil {
		return models.PublicUser{}, wrapInternal(err)
	}
	if exists {
		return models.PublicUser{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicUser{}, wrapInternal(err)
	}

	id, err := s.Users.Insert(ctx, s.DB, models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		// Lost the race against a concurrent registration of the same email.
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return models.PublicUser{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.PublicUser{}, wrapInternal(err)
	}

	return models.PublicUser{ID: id, Email: email, Role: role}, nil
}

// Login verifies the credentials and signs a week-long HS256 token carrying
// the (userId, role) identity pair.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.PublicUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}

	user, err := s.Users.FindByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.PublicUser{}, ErrInvalidCredentials
		}
		return "", models.PublicUser{}, wrapInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", models.PublicUser{}, wrapInternal(err)
	}

	return signed, user.Public(), nil
}

func (s AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if current == "" || next == "" {
		return domain.ValidationError{Field: "password", Msg: "current and new password are required"}
	}

	user, err := s.Users.FindByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "user", Err: err}
		}
		return wrapInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return wrapInternal(err)
	}
	return wrapInternal(s.Users.UpdatePassword(ctx, s.DB, userID, string(hash)))
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"
	"github.com/MatheusScaranello/AgendaProBack/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterEstablishmentRequest) (*dto.EstablishmentResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, establishmentID, tokenID string) error
}

type authUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	establishmentRepo repository.EstablishmentRepository
	jwtService        *jwt.JWTService
	redisClient       *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	establishmentRepo repository.EstablishmentRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:                db,
		log:               log,
		establishmentRepo: establishmentRepo,
		jwtService:        jwtService,
		redisClient:       redisClient,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	establishment := &entity.Establishment{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Plan:     req.Plan,
		Password: string(hashedPassword),
	}

	if err := u.establishmentRepo.Create(u.db.WithContext(ctx), establishment); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create establishment: %+v", err)
		return nil, err
	}

	u.log.Infof("Establishment registered: id=%s, email=%s", establishment.ID, establishment.Email)
	return converter.EstablishmentToResponse(establishment), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	establishment, err := u.establishmentRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find establishment by email: %+v", err)
		return nil, err
	}
	if establishment == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(establishment.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(establishment.ID, establishment.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(establishment.ID, establishment.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", establishment.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", establishment.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		ExpiresIn:     int64(u.jwtService.GetAccessExpiry().Seconds()),
		Establishment: converter.EstablishmentToResponse(establishment),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, establishmentID, tokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", establishmentID, tokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	// sqlite reports unique violations as plain errors
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") && strings.Contains(msg, strings.ToLower(constraintName))
}

package users_services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	users_dto "teamhub/internal/features/users/dto"
	users_enums "teamhub/internal/features/users/enums"
	users_interfaces "teamhub/internal/features/users/interfaces"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
)

// Access tokens are valid for 7 days; the auth cookie carries the same
// lifetime.
const TokenLifetime = 7 * 24 * time.Hour

type UserService struct {
	userRepository       *users_repositories.UserRepository
	secretKeyRepository  *users_repositories.SecretKeyRepository
	preferenceRepository *users_repositories.PreferenceRepository
	// audit log is never nil, DI always set it
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewUserService(
	userRepository *users_repositories.UserRepository,
	secretKeyRepository *users_repositories.SecretKeyRepository,
	preferenceRepository *users_repositories.PreferenceRepository,
) *UserService {
	return &UserService{
		userRepository:       userRepository,
		secretKeyRepository:  secretKeyRepository,
		preferenceRepository: preferenceRepository,
	}
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_dto.SignInResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)
	now := time.Now().UTC()

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          request.Email,
		FullName:       request.FullName,
		AvatarURL:      request.AvatarURL,
		HashedPassword: &hashedPasswordStr,
		TeamID:         nil,
		Role:           users_enums.TeamRoleMember,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User registered with email: %s", user.Email),
			&user.ID,
			nil,
		)
	}

	return s.GenerateAccessToken(user)
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.HasPassword() {
		return nil, errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User signed in with email: %s", user.Email),
			&user.ID,
			nil,
		)
	}

	return response, nil
}

// GetCallerFromToken verifies the token signature and expiry and
// returns the claim-derived caller identity. It never touches storage
// beyond the signing secret: any parse, signature or expiry failure is
// an error the middleware treats as unauthenticated.
func (s *UserService) GetCallerFromToken(token string) (*users_models.Caller, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("invalid token claims")
	}

	caller := &users_models.Caller{
		ID:    userID,
		Email: email,
	}

	if fullName, ok := claims["fullName"].(string); ok {
		caller.FullName = fullName
	}
	if avatarURL, ok := claims["avatarUrl"].(string); ok {
		caller.AvatarURL = avatarURL
	}

	return caller, nil
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       user.ID.String(),
		"email":     user.Email,
		"fullName":  user.FullName,
		"avatarUrl": user.AvatarURL,
		"exp":       now.Add(TokenLifetime).Unix(),
		"iat":       now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

// GetProfile loads the stored profile for the caller, creating it from
// the token claims if it does not exist yet.
func (s *UserService) GetProfile(caller *users_models.Caller) (*users_models.User, error) {
	user, err := s.userRepository.GetUserByID(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user != nil {
		return user, nil
	}

	now := time.Now().UTC()
	user = &users_models.User{
		ID:        caller.ID,
		Email:     caller.Email,
		FullName:  caller.FullName,
		AvatarURL: caller.AvatarURL,
		TeamID:    nil,
		Role:      users_enums.TeamRoleMember,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(
	caller *users_models.Caller,
	request *users_dto.UpdateProfileRequestDTO,
) (*users_models.User, error) {
	updates := map[string]any{}

	if request.FullName != nil {
		updates["full_name"] = *request.FullName
	}
	if request.AvatarURL != nil {
		updates["avatar_url"] = *request.AvatarURL
	}
	if request.Bio != nil {
		updates["bio"] = *request.Bio
	}

	if len(updates) > 0 {
		if err := s.userRepository.UpdateUserProfile(caller.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.userRepository.GetUserByID(caller.ID)
}

func (s *UserService) ChangePassword(callerID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepository.GetUserByID(callerID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.HasPassword() {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(currentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(callerID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			"Password changed",
			&callerID,
			nil,
		)
	}

	return nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_dto "teamhub/internal/features/users/dto"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	users_services "teamhub/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser() *users_dto.SignInResponseDTO {
	return CreateTestUserWithName("Test User")
}

func CreateTestUserWithName(fullName string) *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("%s-%s@test.com",
		strings.ReplaceAll(strings.ToLower(fullName), " ", "-"),
		userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             userID,
		Email:          email,
		FullName:       fullName,
		HashedPassword: &hashedPassword,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Email = user.Email

	return response
}

func GetTestUser(userID uuid.UUID) *users_models.User {
	userRepository := &users_repositories.UserRepository{}

	user, err := userRepository.GetUserByID(userID)
	if err != nil {
		panic(err)
	}
	if user == nil {
		panic(fmt.Sprintf("test user %s not found", userID))
	}

	return user
}

package users_services

import (
	users_repositories "teamhub/internal/features/users/repositories"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}
var preferenceRepository = &users_repositories.PreferenceRepository{}

var userService = &UserService{
	userRepository:       userRepository,
	secretKeyRepository:  secretKeyRepository,
	preferenceRepository: preferenceRepository,
}
var preferenceService = &PreferenceService{
	preferenceRepository: preferenceRepository,
}

func GetUserService() *UserService {
	return userService
}

func GetPreferenceService() *PreferenceService {
	return preferenceService
}

package users_controllers

import (
	users_services "teamhub/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = UserController{
	userService:   users_services.GetUserService(),
	signinLimiter: rate.NewLimiter(rate.Limit(3), 3),
}

var preferenceController = PreferenceController{
	preferenceService: users_services.GetPreferenceService(),
}

func GetUserController() *UserController {
	return &userController
}

func GetPreferenceController() *PreferenceController {
	return &preferenceController
}

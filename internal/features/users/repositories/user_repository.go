package users_repositories

import (
	"time"

	users_enums "teamhub/internal/features/users/enums"
	users_models "teamhub/internal/features/users/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	users := make([]*users_models.User, 0)

	if len(userIDs) == 0 {
		return users, nil
	}

	err := storage.GetDb().Where("id IN ?", userIDs).Find(&users).Error

	return users, err
}

func (r *UserRepository) UpdateUserProfile(userID uuid.UUID, updates map[string]any) error {
	updates["updated_at"] = time.Now().UTC()

	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password": hashedPassword,
			"updated_at":      time.Now().UTC(),
		}).Error
}

// UpdateUserTeam keeps the denormalized team assignment on the profile
// in sync with membership changes. teamID may be nil to clear it.
func (r *UserRepository) UpdateUserTeam(userID uuid.UUID, teamID *uuid.UUID, role users_enums.TeamRole) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"team_id":    teamID,
			"role":       role,
			"updated_at": time.Now().UTC(),
		}).Error
}

// ClearUserTeam drops the denormalized assignment when a user leaves
// or is removed from their team.
func (r *UserRepository) ClearUserTeam(userID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"team_id":    nil,
			"role":       "",
			"updated_at": time.Now().UTC(),
		}).Error
}

// UpdateUserTeamTx is UpdateUserTeam running inside the caller's
// transaction. Used by the invitation accept path.
func (r *UserRepository) UpdateUserTeamTx(
	tx *gorm.DB,
	userID uuid.UUID,
	teamID *uuid.UUID,
	role users_enums.TeamRole,
) error {
	return tx.Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"team_id":    teamID,
			"role":       role,
			"updated_at": time.Now().UTC(),
		}).Error
}

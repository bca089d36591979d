package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	users_models "teamhub/internal/features/users/models"
	"teamhub/internal/storage"

	"gorm.io/gorm"
)

type SecretKeyRepository struct {
	mu     sync.Mutex
	cached string
}

// GetSecretKey returns the token signing secret, generating and storing
// one on first use.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}

	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		r.cached = secretKey.Secret
		return r.cached, nil
	}

	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to load secret key: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey.Secret = hex.EncodeToString(raw)
	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to store secret key: %w", err)
	}

	r.cached = secretKey.Secret

	return r.cached, nil
}

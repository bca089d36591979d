package storage

import (
	"sync"

	"teamhub/internal/config"
	"teamhub/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()

		connection, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
			Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		db = connection
	})

	return db
}

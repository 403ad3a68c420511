package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/campushub/api/internal/adapters/database/postgres"
	"github.com/campushub/api/pkg/logger"
)

type Config struct {
	ServerPort    int
	StorageDriver string
	JWTSecret     string
	JWTTTL        time.Duration
	Database      *gorm.DB
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("service.storage.driver", "memory")
	viper.SetDefault("service.jwt.ttl", 168*time.Hour)

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	cfg := &Config{
		ServerPort:    viper.GetInt("server.port"),
		StorageDriver: viper.GetString("service.storage.driver"),
		JWTSecret:     viper.GetString("service.jwt.secret"),
		JWTTTL:        viper.GetDuration("service.jwt.ttl"),
	}
	if cfg.JWTSecret == "" {
		logger.Log.Panic("service.jwt.secret is required")
	}

	if cfg.StorageDriver == "postgres" {
		var gormConfig *gorm.Config
		if viper.GetBool("settings.debug") {
			newLogger := gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
			gormConfig = &gorm.Config{
				Logger: newLogger,
			}
		} else {
			gormConfig = &gorm.Config{}
		}

		dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
			viper.GetString("service.database.user"),
			viper.GetString("service.database.password"),
			viper.GetString("service.database.name"),
			viper.GetString("service.database.host"),
			viper.GetInt("service.database.port"),
		)

		database, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			logger.Log.Panicf("Failed to connect to the database: %v", err)
		} else {
			logger.Log.Info("Successfully connected to the database")
		}

		errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
		if errMigrate != nil {
			logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
		}

		cfg.Database = database
	}

	return cfg
}

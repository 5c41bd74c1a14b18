package main

import (
	"log"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/commands"
	"hrm/backend/internal/pkg/config"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/router"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalln("config error:", err)
	}

	postgresDB := postgresql.NewDB(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
	)

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	authenticator, err := auth.NewAuth(cfg.PrivateKeyPath)
	if err != nil {
		log.Fatalln("auth error:", err)
	}

	app := web.NewApp()

	r := router.NewRouter(
		app,
		postgresDB,
		redisDB,
		cfg.ServerPort,
		authenticator,
		cfg.PrivateKeyPath,
		cfg.MediaBasePath,
	)

	if err = r.Init(); err != nil {
		log.Fatalln("server error:", err)
	}
}

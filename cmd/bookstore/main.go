// Package main runs the bookstore API.
//
// @title                       Bookstore API
// @version                     1.0
// @description                 Library and bookstore backend: catalog, identity, commerce and rentals.
// @BasePath                    /api/v1
// @schemes                     http
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Use:  Bearer <token>
package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/app"
	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/config"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../bookstore/internal/handler -o ../../swagger --ot go

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}

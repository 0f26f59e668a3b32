package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		logrus.WithError(err).Fatal("seed admin failed")
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			logrus.WithError(err).Fatal("seed demo staff failed")
		}
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// complaint pictures
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

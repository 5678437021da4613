package main

import (
	"time"

	"prompt-vault/config"
	"prompt-vault/database"
	routes "prompt-vault/internal/app/http"
	"prompt-vault/internal/infra/tokens"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()
	tokens.Init(config.JWT_SECRET, config.JWT_TTL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Usage-Limit", "X-Usage-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logrus.Infof("Listening on :%s", config.PORT)
	if err := r.Run(":" + config.PORT); err != nil {
		logrus.Fatal(err)
	}
}

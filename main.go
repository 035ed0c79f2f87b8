//	@title			Campus Backend
//	@version		0.0.1
//	@description	Invitation-based account provisioning for campus tenants

//	@license.name	Apache 2.0
//	@license.url	https://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8000
//	@BasePath	/api

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus_backend/apis"
	"campus_backend/config"
	_ "campus_backend/docs"
	"campus_backend/middlewares"
	"campus_backend/models"
	"campus_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func main() {
	config.InitConfig()
	models.InitDB()

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: utils.MyErrorHandler,
	})
	middlewares.RegisterMiddlewares(app)
	apis.RegisterRoutes(app)

	startTasks()

	go func() {
		err := app.Listen("0.0.0.0:8000")
		if err != nil {
			log.Println(err)
		}
	}()

	interrupt := make(chan os.Signal, 1)

	// wait for CTRL-C interrupt
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-interrupt

	// close app
	err := app.Shutdown()
	if err != nil {
		log.Println(err)
	}

	_ = utils.Logger.Sync()
}

func startTasks() {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", models.UsageStatusTask) // run every day 00:00
	if err != nil {
		panic(err)
	}
	go c.Start()
}

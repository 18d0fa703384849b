package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	apiv1 "hr-evaluation-backend/controllers/v1"
	"hr-evaluation-backend/fiberlog"
	"hr-evaluation-backend/initializers"
	"hr-evaluation-backend/middleware"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: swaggerFile,
		}))
	} else {
		log.WithError(err).Warn("описание swagger не найдено, /swagger недоступен")
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//администрирование оценки
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.AdminRoleRequired())
	apiv1.InitPeriodApiRouters(admin)
	apiv1.InitPeriodStatusApiRouters(admin)
	apiv1.InitWbsAssignmentApiRouters(admin)
	apiv1.InitEmployeeEvaluationApiRouters(admin)

	//участники оценки
	evaluation := fiber.New()
	apiV1.Mount("/evaluation", evaluation)
	evaluation.Use(middleware.AuthorizationRequired())
	apiv1.InitSubmissionApiRouters(evaluation)
	apiv1.InitRevisionRequestApiRouters(evaluation)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

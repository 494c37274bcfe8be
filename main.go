package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"horeca-jobs-backend/config"
	apiv1 "horeca-jobs-backend/controllers/v1"
	"horeca-jobs-backend/fiberlog"
	"horeca-jobs-backend/initializers"
	"horeca-jobs-backend/lib/ws"
	"horeca-jobs-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // limit of 50MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//публичные маршруты, без авторизации
	public := fiber.New()
	apiV1.Mount("/public", public)
	apiv1.InitWaitlistPublicRouters(public)

	//организация
	org := fiber.New()
	apiV1.Mount("/org", org)
	org.Use(middleware.AuthorizationRequired())
	org.Use(middleware.WithBodyLimit(1 * 1024 * 1024))
	apiv1.InitJobApiRouters(org)
	apiv1.InitApplicationApiRouters(org)
	apiv1.InitPipelineApiRouters(org)
	apiv1.InitDocumentApiRouters(org)
	apiv1.InitBillingApiRouters(org)
	apiv1.InitDiscoveryApiRouters(org)
	apiv1.InitAuditApiRouters(org)

	//соискатель
	candidate := fiber.New()
	apiV1.Mount("/candidate", candidate)
	candidate.Use(middleware.AuthorizationRequired())
	apiv1.InitCandidateApiRouters(candidate)

	//админка
	adminPanel := fiber.New()
	apiV1.Mount("/admin_panel", adminPanel)
	adminPanel.Use(middleware.AuthorizationRequired())
	apiv1.InitWaitlistAdminRouters(adminPanel)

	//события воронки
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
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

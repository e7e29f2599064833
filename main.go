package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/prathameshnadhe/parikrama-web/config"
	handlerInit "github.com/prathameshnadhe/parikrama-web/internal/handler/util"
	repoInit "github.com/prathameshnadhe/parikrama-web/internal/repository/util"
	servInit "github.com/prathameshnadhe/parikrama-web/internal/service/util"
	"github.com/prathameshnadhe/parikrama-web/internal/session"
	"github.com/prathameshnadhe/parikrama-web/internal/view"
)

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		panic(err)
	}

	repo, err := repoInit.New(cfg)
	if err != nil {
		panic(err)
	}

	serv := servInit.New(cfg, repo)

	renderer, err := view.NewRenderer()
	if err != nil {
		panic(err)
	}

	// Initialize Echo
	e := echo.New()
	e.Renderer = renderer

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Middleware(cfg, repo.UserRepo))

	// --- health check ---
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Parikrama web is healthy!")
	})

	e.Static("/static", "static")

	// Initialize handlers
	handlerInit.InitHandler(cfg, e, serv)

	// Start server
	serverAddr := "localhost:8081"
	if cfg.AppPort != 0 {
		serverAddr = fmt.Sprintf(":%d", cfg.AppPort)
	}
	go func() {
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	log.Printf("Server is running at http://%s", serverAddr)

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

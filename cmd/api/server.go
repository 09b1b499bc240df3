package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func (app *application) serve() error {
	mux, err := app.routes()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: app.Config.LLM.Timeout + 30*time.Second,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.Logger.Info("shutting down server", zap.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	app.Logger.Info("starting server",
		zap.String("addr", server.Addr),
		zap.String("env", app.Config.Env),
		zap.String("provider", app.Config.LLM.Provider),
		zap.Bool("error_details", app.Config.IsDevelopment()),
	)

	err = server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	app.Logger.Info("stopped server", zap.String("addr", server.Addr))
	return nil
}

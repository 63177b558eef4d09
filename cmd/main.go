package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skydash/pkg/client"
	"skydash/pkg/config"
	"skydash/pkg/consts"
	"skydash/pkg/handler"
	"skydash/pkg/logging"
	repo "skydash/pkg/repository"
	srvc "skydash/pkg/service"
	"skydash/pkg/views"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %s", err.Error())
	}

	if err := logging.Setup(os.Stdout, cnf.AppEnv, cnf.LogLevel); err != nil {
		logrus.Fatalf("failed to set up logging: %s", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var db *sqlx.DB
	if cnf.Journal.Enabled() {
		db, err = repo.Open(ctx, cnf.Journal)
		if err != nil {
			logrus.Fatalf("failed to initialize journal db: %s", err.Error())
		}
		logrus.Infof("fetch journal enabled (%s)", cnf.Journal.Driver)
	}

	repos := repo.NewRepository(db)

	api := client.New(
		client.Config{BaseURL: cnf.BaseURL, APIKey: cnf.APIKey},
		nil,
		client.WithObserver(srvc.NewJournalRecorder(repos.Journal)),
	)

	if err := views.LoadTemplates(); err != nil {
		logrus.Fatalf("failed to load templates: %s", err.Error())
	}

	handlers := handler.NewHandler(srvc.NewService(api, repos), consts.SplashDelay)

	srv := new(server)
	go func() {
		if err := srv.Run(cnf.Port, handlers.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Infof("skydash listening on :%s", cnf.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Printf("skydash Shutting Down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logrus.Errorf("error occured on db connection close: %s", err.Error())
		}
	}
}

type server struct {
	httpSrv *http.Server
}

func (s *server) Run(port string, h http.Handler) error {
	s.httpSrv = &http.Server{
		Addr:           ":" + port,
		Handler:        h,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   20 * time.Second,
		IdleTimeout:    10 * time.Second,
	}

	return s.httpSrv.ListenAndServe()
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/optimode/mailsift"
	"github.com/optimode/mailsift/internal/server"
)

func main() {
	cfg := server.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	verifier := mailsift.New().
		WithLists(mailsift.ListOptions{
			DisposableFile:   cfg.DisposableListFile,
			FreeProviderFile: cfg.FreeProviderListFile,
		}).
		WithResolver(mailsift.ResolverOptions{
			Timeout:  cfg.DNSTimeout,
			CacheTTL: cfg.DNSCacheTTL,
		})
	if err := verifier.Err(); err != nil {
		log.WithError(err).Fatal("loading classification lists")
	}

	srv := server.New(cfg, verifier, log)
	log.WithField("port", cfg.Port).Info("mailsiftd listening")
	if err := srv.Listen(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

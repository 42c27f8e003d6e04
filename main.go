package main

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"uhi-engine/internal/config"
	"uhi-engine/internal/handler"
	"uhi-engine/internal/rateregistry"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config load failed", zap.Error(err))
	}
	cfg.Assumptions = rateregistry.NewFromEnv().Apply(cfg.Assumptions)

	h := handler.New(log, cfg.Assumptions)

	log.Info("UHI actuarial engine starting", zap.String("port", cfg.Port))
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Route); err != nil {
		log.Fatal("Server failed", zap.Error(err))
	}
}

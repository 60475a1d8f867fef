package main

import (
	"log"

	"scorecard_backend/internal/app/router"
	fundamentalshandler "scorecard_backend/internal/feature/fundamentals/transport/handler"
	fundamentalsusecase "scorecard_backend/internal/feature/fundamentals/usecase"
	growthhandler "scorecard_backend/internal/feature/growth/transport/handler"
	growthusecase "scorecard_backend/internal/feature/growth/usecase"
	identityhandler "scorecard_backend/internal/feature/identity/transport/handler"
	recordshandler "scorecard_backend/internal/feature/records/transport/handler"
	recordsusecase "scorecard_backend/internal/feature/records/usecase"
	riskhandler "scorecard_backend/internal/feature/risk/transport/handler"
	riskusecase "scorecard_backend/internal/feature/risk/usecase"
	"scorecard_backend/internal/platform/config"
	jwtmw "scorecard_backend/internal/platform/jwt"
	"scorecard_backend/internal/platform/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Record store: the JSON document is loaded once here and rewritten in
	// full on every mutation.
	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}

	// Usecase
	growthUC := growthusecase.NewGrowthUsecase(st)
	fundamentalsUC := fundamentalsusecase.NewFundamentalsUsecase(st)
	riskUC := riskusecase.NewRiskUsecase(st)
	recordsUC := recordsusecase.NewRecordsUsecase(st)

	// Handler
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	identityH := identityhandler.NewIdentityHandler(tokens)
	growthH := growthhandler.NewGrowthHandler(growthUC)
	fundamentalsH := fundamentalshandler.NewFundamentalsHandler(fundamentalsUC)
	riskH := riskhandler.NewRiskHandler(riskUC)
	recordsH := recordshandler.NewRecordsHandler(recordsUC)

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	r := router.NewRouter(identityH, growthH, fundamentalsH, riskH, recordsH, cfg.JWTSecret)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

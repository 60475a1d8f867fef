// Package router assembles the HTTP routes of the scorecard backend.
package router

import (
	"github.com/gin-gonic/gin"

	fundamentalshandler "scorecard_backend/internal/feature/fundamentals/transport/handler"
	growthhandler "scorecard_backend/internal/feature/growth/transport/handler"
	identityhandler "scorecard_backend/internal/feature/identity/transport/handler"
	recordshandler "scorecard_backend/internal/feature/records/transport/handler"
	riskhandler "scorecard_backend/internal/feature/risk/transport/handler"
	"scorecard_backend/internal/platform/http/handler"
	jwtmw "scorecard_backend/internal/platform/jwt"
)

// NewRouter wires every handler into a gin engine. All evaluation and record
// routes run behind the identity middleware, which resolves the caller's
// username or falls back to Guest; nothing is ever rejected for lacking a
// token.
func NewRouter(identity *identityhandler.IdentityHandler, growth *growthhandler.GrowthHandler,
	fundamentals *fundamentalshandler.FundamentalsHandler, risk *riskhandler.RiskHandler,
	records *recordshandler.RecordsHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)
	// Pick a username, receive an identity token
	r.POST("/welcome", identity.Welcome)

	// Identity-scoped routes
	scoped := r.Group("/")
	scoped.Use(jwtmw.Identity(jwtSecret))
	{
		scoped.GET("/growth", growth.Form)
		scoped.POST("/growth", growth.Evaluate)

		scoped.POST("/company", fundamentals.Evaluate)

		scoped.GET("/risk", risk.Form)
		scoped.POST("/risk", risk.Submit)

		scoped.GET("/memory", records.List)
		scoped.GET("/memory/:company", records.Detail)
		scoped.DELETE("/memory/:company", records.Delete)
	}

	return r
}

package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) == 1 && deps.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api", sessionMiddleware())
	api.POST("/gate", h.gateSubmit)

	unlocked := api.Group("", gateRequired(deps.Tokens))
	unlocked.GET("/catalog", h.getCatalog)

	unlocked.GET("/cart", h.getCart)
	unlocked.POST("/cart/items", h.addCartItem)
	unlocked.PATCH("/cart/items/:id", h.updateCartItem)
	unlocked.DELETE("/cart/items/:id", h.removeCartItem)
	unlocked.DELETE("/cart", h.clearCart)

	unlocked.POST("/checkout", h.openCheckout)
	unlocked.GET("/checkout", h.getCheckout)
	unlocked.POST("/checkout/recipient", h.submitRecipient)
	unlocked.POST("/checkout/back", h.checkoutBack)
	unlocked.POST("/checkout/contact", h.setContact)
	unlocked.POST("/checkout/payment", h.selectPayment)
	unlocked.POST("/checkout/qr/confirm", h.confirmQRPaid)
	unlocked.GET("/checkout/qr.png", h.checkoutQR)
	unlocked.GET("/checkout/receipt", h.getReceipt)
	unlocked.DELETE("/checkout", h.closeCheckout)

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}

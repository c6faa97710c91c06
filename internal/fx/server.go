package fx

import (
	"context"
	"net/http"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/config"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/logger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/middleware"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		operators := api.Group("/operators")
		{
			operators.POST("", handler.CreateOperator)
			operators.GET("", handler.ListOperators)
			operators.GET("/:id", handler.GetOperator)
			operators.PATCH("/:id", handler.UpdateOperator)
			operators.DELETE("/:id", handler.DeleteOperator)
		}

		accounts := api.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.GET("/:id", handler.GetAccount)
			accounts.PATCH("/:id", handler.UpdateAccount)
			accounts.GET("/:id/reconciliation", handler.ReconcileAccount)
		}

		receivables := api.Group("/receivables")
		{
			receivables.POST("/generate", handler.GenerateReceivables)
			receivables.GET("", handler.ListReceivables)
			receivables.GET("/:id", handler.GetReceivable)
			receivables.GET("/sale/:saleId", handler.GetReceivablesBySale)
			receivables.POST("/:id/confirm", handler.ConfirmReceivable)
			receivables.POST("/:id/reverse", handler.ReverseReceivable)
		}

		payables := api.Group("/payables")
		{
			payables.POST("", handler.CreateBill)
			payables.GET("", handler.ListBills)
			payables.GET("/:id", handler.GetBill)
			payables.PATCH("/:id", handler.UpdateBill)
			payables.DELETE("/:id", handler.DeleteBill)
			payables.POST("/:id/pay", handler.PayBill)
			payables.POST("/:id/reverse-payment", handler.ReverseBillPayment)
		}

		ledger := api.Group("/cash-ledger")
		{
			ledger.POST("", handler.CreateLedgerEntry)
			ledger.GET("", handler.ListLedgerEntries)
			ledger.GET("/:id", handler.GetLedgerEntry)
			ledger.DELETE("/:id", handler.DeleteLedgerEntry)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}

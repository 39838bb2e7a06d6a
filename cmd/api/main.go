package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/predialtech/garantia-api/internal/application/report"
	"github.com/predialtech/garantia-api/internal/application/usecase"
	infrapdf "github.com/predialtech/garantia-api/internal/infrastructure/pdf"
	"github.com/predialtech/garantia-api/internal/infrastructure/postgres"
	httpRouter "github.com/predialtech/garantia-api/internal/interfaces/http"
	"github.com/predialtech/garantia-api/pkg/config"
	"github.com/predialtech/garantia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empRepo := postgres.NewEmpreendimentoRepository(pool)
	osRepo := postgres.NewOrdemServicoRepository(pool)
	atvRepo := postgres.NewAtividadeManutencaoRepository(pool)
	orcRepo := postgres.NewOrcamentoRepository(pool)
	prestRepo := postgres.NewPrestadorRepository(pool)
	slaRepo := postgres.NewSLARuleRepository(pool)
	notifRepo := postgres.NewNotificacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empUC := usecase.NewEmpreendimentoUseCase(empRepo)
	osUC := usecase.NewOSUseCase(osRepo, empRepo, slaRepo)
	orcUC := usecase.NewOrcamentoUseCase(txRunner, osRepo, orcRepo, prestRepo)
	manutencaoUC := usecase.NewManutencaoUseCase(atvRepo, empRepo)
	dashboardUC := usecase.NewDashboardUseCase(empRepo, osRepo, atvRepo)
	prestadorUC := usecase.NewPrestadorUseCase(prestRepo)
	slaConfigUC := usecase.NewSLAConfigUseCase(slaRepo)
	notificacaoUC := usecase.NewNotificacaoUseCase(notifRepo)

	// PDF: relatório de conformidade de manutenção
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewComplianceReportUseCase(empRepo, dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Garantia Predial API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpreendimentoUC: empUC,
		OSUC:             osUC,
		OrcamentoUC:      orcUC,
		ManutencaoUC:     manutencaoUC,
		DashboardUC:      dashboardUC,
		PrestadorUC:      prestadorUC,
		SLAConfigUC:      slaConfigUC,
		NotificacaoUC:    notificacaoUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

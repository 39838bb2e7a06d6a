package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/report"
	"github.com/predialtech/garantia-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpreendimentoUC *usecase.EmpreendimentoUseCase
	OSUC             *usecase.OSUseCase
	OrcamentoUC      *usecase.OrcamentoUseCase
	ManutencaoUC     *usecase.ManutencaoUseCase
	DashboardUC      *usecase.DashboardUseCase
	PrestadorUC      *usecase.PrestadorUseCase
	SLAConfigUC      *usecase.SLAConfigUseCase
	NotificacaoUC    *usecase.NotificacaoUseCase
	ReportUC         *report.ComplianceReportUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo NBR 17170 (público: dados de referência)
	catalogo := api.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler()
	catalogo.Get("/garantias", catalogoHandler.List)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empreendimentos
	empreendimentos := protected.Group("/empreendimentos")
	empHandler := NewEmpreendimentoHandler(deps.EmpreendimentoUC)
	empreendimentos.Post("/", empHandler.Create)
	empreendimentos.Get("/", empHandler.List)
	empreendimentos.Get("/:id", empHandler.GetByID)
	empreendimentos.Put("/:id", empHandler.Update)
	empreendimentos.Delete("/:id", RequireRole("admin", "gestor"), empHandler.Delete)
	empreendimentos.Get("/:id/garantias", empHandler.Garantias)

	// Dashboard e conformidade
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	empreendimentos.Get("/:id/dashboard", dashboardHandler.Resumo)
	empreendimentos.Get("/:id/conformidade", dashboardHandler.Conformidade)

	// Relatório de conformidade (PDF)
	reportHandler := NewReportHandler(deps.ReportUC)
	empreendimentos.Get("/:id/relatorio-conformidade", reportHandler.Conformidade)

	// Ordens de serviço
	osGroup := protected.Group("/os")
	osHandler := NewOSHandler(deps.OSUC)
	osGroup.Post("/", osHandler.Create)
	osGroup.Get("/", osHandler.List)
	osGroup.Get("/:id", osHandler.GetByID)
	osGroup.Patch("/:id/status", osHandler.UpdateStatus)

	// Orçamentos (marketplace)
	orcHandler := NewOrcamentoHandler(deps.OrcamentoUC)
	osGroup.Post("/:id/orcamentos", orcHandler.Submit)
	osGroup.Get("/:id/orcamentos", orcHandler.ListByOS)
	osGroup.Post("/:id/orcamentos/:orcamentoId/aceite", RequireRole("admin", "gestor", "sindico"), orcHandler.Accept)

	// Plano de manutenção preventiva
	manutencao := protected.Group("/manutencao")
	manutencaoHandler := NewManutencaoHandler(deps.ManutencaoUC)
	manutencao.Post("/atividades", manutencaoHandler.Create)
	manutencao.Get("/atividades", manutencaoHandler.List)
	manutencao.Put("/atividades/:id", manutencaoHandler.Update)
	manutencao.Delete("/atividades/:id", manutencaoHandler.Delete)

	// Prestadores
	prestadores := protected.Group("/prestadores")
	prestadorHandler := NewPrestadorHandler(deps.PrestadorUC)
	prestadores.Post("/", prestadorHandler.Create)
	prestadores.Get("/", prestadorHandler.List)
	prestadores.Get("/:id", prestadorHandler.GetByID)

	// Regras de SLA (restrito)
	slaGroup := protected.Group("/sla", RequireRole("admin", "gestor"))
	slaHandler := NewSLAHandler(deps.SLAConfigUC)
	slaGroup.Get("/regras", slaHandler.List)
	slaGroup.Put("/regras", slaHandler.Replace)

	// Notificações (trilha de auditoria)
	notificacaoHandler := NewNotificacaoHandler(deps.NotificacaoUC)
	protected.Get("/notificacoes", notificacaoHandler.List)
}

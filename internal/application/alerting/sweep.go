package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/predialtech/garantia-api/internal/domain/alerting"
	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/repository"
	"github.com/predialtech/garantia-api/pkg/logger"
)

// SweepResult contadores de uma execução da varredura.
type SweepResult struct {
	Avaliadas    int // OS com prazo avaliadas
	Emitidos     int // alertas efetivamente despachados
	Deduplicados int // decisões suprimidas pelo dedupe diário
	Falhas       int // falhas de despacho (logadas, não abortam a varredura)
}

// SweepUseCase varredura periódica: classifica prazos de OS abertas e lacunas
// de manutenção por empreendimento, deduplica por dia e despacha.
//
// Execuções sobrepostas são toleradas: a classificação é idempotente para o
// mesmo input e o dedupe diário segura envios repetidos.
type SweepUseCase struct {
	empRepo   repository.EmpreendimentoRepository
	osRepo    repository.OrdemServicoRepository
	notifRepo repository.NotificacaoRepository
	deduper   Deduper
	notifier  Notifier
	log       *logger.Logger
	nowFn     func() time.Time
}

// NewSweepUseCase constrói a varredura.
func NewSweepUseCase(
	empRepo repository.EmpreendimentoRepository,
	osRepo repository.OrdemServicoRepository,
	notifRepo repository.NotificacaoRepository,
	deduper Deduper,
	notifier Notifier,
	log *logger.Logger,
) *SweepUseCase {
	return &SweepUseCase{
		empRepo:   empRepo,
		osRepo:    osRepo,
		notifRepo: notifRepo,
		deduper:   deduper,
		notifier:  notifier,
		log:       log,
		nowFn:     time.Now,
	}
}

// WithNow substitui o relógio (testes).
func (uc *SweepUseCase) WithNow(now func() time.Time) *SweepUseCase {
	uc.nowFn = now
	return uc
}

// Run executa uma varredura completa: prazos de OS e lacunas de manutenção.
func (uc *SweepUseCase) Run(ctx context.Context) (*SweepResult, error) {
	hoje := uc.nowFn()
	res := &SweepResult{}

	empreendimentos, err := uc.empRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("varredura: empreendimentos: %w", err)
	}
	porID := make(map[string]*entity.Empreendimento, len(empreendimentos))
	for _, e := range empreendimentos {
		porID[e.ID] = e
	}

	if err := uc.varrePrazos(ctx, porID, hoje, res); err != nil {
		return nil, err
	}
	if err := uc.varreLacunas(ctx, empreendimentos, hoje, res); err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("avaliadas", res.Avaliadas).
		Int("emitidos", res.Emitidos).
		Int("deduplicados", res.Deduplicados).
		Int("falhas", res.Falhas).
		Msg("varredura de notificações concluída")
	return res, nil
}

// varrePrazos classifica o prazo de atendimento de cada OS aberta.
func (uc *SweepUseCase) varrePrazos(ctx context.Context, porID map[string]*entity.Empreendimento, hoje time.Time, res *SweepResult) error {
	ordens, err := uc.osRepo.ListAbertasComPrazo(ctx)
	if err != nil {
		return fmt.Errorf("varredura: ordens abertas: %w", err)
	}

	for _, os := range ordens {
		if os.PrazoAtendimento == nil {
			continue
		}
		res.Avaliadas++

		decisao, err := alerting.Classify(*os.PrazoAtendimento, os.Tipo, hoje)
		if err != nil {
			uc.log.Warn().Err(err).Str("os_id", os.ID).Msg("classificação de prazo rejeitada")
			continue
		}
		if decisao.Urgencia == alerting.UrgenciaNenhuma {
			continue
		}

		emp := porID[os.EmpreendimentoID]
		if emp == nil || emp.SindicoEmail == "" {
			uc.log.Warn().Str("os_id", os.ID).Msg("sem destinatário para alerta de prazo")
			continue
		}

		chave := fmt.Sprintf("os:%s:%s", os.ID, decisao.Urgencia)
		assunto := fmt.Sprintf("[%s] OS %q", decisao.Urgencia, os.Titulo)
		uc.emite(ctx, emp, os.ID, chave, assunto, decisao, hoje, res)
	}
	return nil
}

// varreLacunas checa a lacuna de manutenção preventiva de cada empreendimento
// entregue.
func (uc *SweepUseCase) varreLacunas(ctx context.Context, empreendimentos []*entity.Empreendimento, hoje time.Time, res *SweepResult) error {
	for _, emp := range empreendimentos {
		referencia := emp.DataReferencia()
		if referencia == nil {
			continue // obra não entregue: sem obrigação de manutenção
		}
		ultima, err := uc.osRepo.UltimaPreventivaConcluida(ctx, emp.ID)
		if err != nil {
			return fmt.Errorf("varredura: última preventiva de %s: %w", emp.ID, err)
		}
		decisao, alertar, err := alerting.MaintenanceGap(ultima, *referencia, hoje)
		if err != nil {
			uc.log.Warn().Err(err).Str("empreendimento_id", emp.ID).Msg("checagem de lacuna rejeitada")
			continue
		}
		if !alertar {
			continue
		}
		if emp.SindicoEmail == "" {
			uc.log.Warn().Str("empreendimento_id", emp.ID).Msg("sem destinatário para alerta de lacuna")
			continue
		}
		chave := "gap:" + emp.ID
		assunto := fmt.Sprintf("[%s] Manutenção preventiva em atraso — %s", decisao.Urgencia, emp.Nome)
		uc.emite(ctx, emp, "", chave, assunto, decisao, hoje, res)
	}
	return nil
}

// emite aplica o dedupe diário, despacha e registra a trilha de auditoria.
func (uc *SweepUseCase) emite(
	ctx context.Context,
	emp *entity.Empreendimento,
	osID, chave, assunto string,
	decisao alerting.Decisao,
	hoje time.Time,
	res *SweepResult,
) {
	primeiro, err := uc.deduper.FirstToday(ctx, chave, hoje)
	if err != nil {
		uc.log.Error().Err(err).Str("chave", chave).Msg("dedupe indisponível, alerta suprimido")
		res.Falhas++
		return
	}
	if !primeiro {
		res.Deduplicados++
		return
	}

	alerta := Alerta{
		DestinatarioEmail: emp.SindicoEmail,
		DestinatarioNome:  emp.SindicoNome,
		Assunto:           assunto,
		Mensagem:          decisao.Mensagem,
		Urgencia:          decisao.Urgencia,
	}
	if err := uc.notifier.Send(ctx, alerta); err != nil {
		uc.log.Error().Err(err).Str("chave", chave).Msg("falha de despacho")
		res.Falhas++
		return
	}
	res.Emitidos++

	n := &entity.Notificacao{
		ID:               uuid.New().String(),
		ConstrutoraID:    emp.ConstrutoraID,
		EmpreendimentoID: emp.ID,
		OSID:             osID,
		Urgencia:         string(decisao.Urgencia),
		Assunto:          assunto,
		Mensagem:         decisao.Mensagem,
		Destinatario:     emp.SindicoEmail,
		EnviadaEm:        hoje,
	}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		// auditoria falhou mas o alerta já saiu; só loga
		uc.log.Error().Err(err).Str("chave", chave).Msg("falha ao registrar notificação")
	}
}

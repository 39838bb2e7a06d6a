package entity

import "time"

// TipoServico classifica uma ordem de serviço.
type TipoServico string

// Valores persistidos (mantidos em snake_case como no banco).
const (
	TipoGarantia    TipoServico = "garantia"
	TipoPreventiva  TipoServico = "manutencao_preventiva"
	TipoNovoServico TipoServico = "novo_servico"
)

// Valida informa se o tipo pertence ao conjunto fechado.
func (t TipoServico) Valida() bool {
	switch t {
	case TipoGarantia, TipoPreventiva, TipoNovoServico:
		return true
	}
	return false
}

// StatusOS é o estado de uma ordem de serviço.
type StatusOS string

const (
	StatusAFazer              StatusOS = "A_FAZER"
	StatusAguardandoOrcamento StatusOS = "AGUARDANDO_ORCAMENTO"
	StatusEmAndamento         StatusOS = "EM_ANDAMENTO"
	StatusConcluida           StatusOS = "CONCLUIDA"
	StatusCancelada           StatusOS = "CANCELADA"
)

// Valida informa se o status pertence ao conjunto fechado.
func (s StatusOS) Valida() bool {
	switch s {
	case StatusAFazer, StatusAguardandoOrcamento, StatusEmAndamento, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// Encerrada informa se a OS está num estado terminal (concluída ou cancelada).
func (s StatusOS) Encerrada() bool {
	return s == StatusConcluida || s == StatusCancelada
}

// OrdemServico é um item de trabalho aberto por um condomínio/proprietário.
//
// PrazoAtendimento só é preenchido quando o tipo é garantia ou manutenção
// preventiva e existe regra de SLA aplicável; novo serviço nunca tem prazo.
// Depois de CONCLUIDA ou CANCELADA a OS é imutável, exceto pelos campos de
// documentação de conclusão (RelatorioConclusao).
type OrdemServico struct {
	ID                 string
	ConstrutoraID      string
	EmpreendimentoID   string
	Titulo             string
	Descricao          string
	Tipo               TipoServico
	Sistema            string // sistema construtivo (NBR 17170); vazio = não classificado
	Status             StatusOS
	SolicitadaEm       time.Time
	PrazoAtendimento   *time.Time // data-limite de atendimento calculada pelo SLA
	PrazoDias          *int       // dias de SLA aplicados na criação (auditoria do cálculo)
	PrestadorID        string     // preenchido quando um orçamento é aceito
	ConcluidaEm        *time.Time
	RelatorioConclusao string // documentação de conclusão (editável mesmo após encerrar)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Atrasada informa se a OS está aberta com prazo de atendimento vencido.
func (os *OrdemServico) Atrasada(hoje time.Time) bool {
	if os.PrazoAtendimento == nil || os.Status.Encerrada() {
		return false
	}
	return os.PrazoAtendimento.Before(hoje)
}

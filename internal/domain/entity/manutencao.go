package entity

import "time"

// Periodicidade de uma atividade de manutenção preventiva (NBR 5674).
type Periodicidade string

const (
	PeriodicidadeMensal     Periodicidade = "mensal"
	PeriodicidadeBimestral  Periodicidade = "bimestral"
	PeriodicidadeTrimestral Periodicidade = "trimestral"
	PeriodicidadeSemestral  Periodicidade = "semestral"
	PeriodicidadeAnual      Periodicidade = "anual"
)

// Meses devolve o intervalo em meses entre ocorrências (0 se desconhecida).
func (p Periodicidade) Meses() int {
	switch p {
	case PeriodicidadeMensal:
		return 1
	case PeriodicidadeBimestral:
		return 2
	case PeriodicidadeTrimestral:
		return 3
	case PeriodicidadeSemestral:
		return 6
	case PeriodicidadeAnual:
		return 12
	}
	return 0
}

// Valida informa se a periodicidade pertence ao conjunto fechado.
func (p Periodicidade) Valida() bool {
	return p.Meses() > 0
}

// AtividadeManutencao é um item do plano de manutenção preventiva de um
// empreendimento: o que deve ser feito, em que sistema e com que frequência.
// As ocorrências previstas dentro de uma janela são derivadas da periodicidade;
// a execução real é registrada como OrdemServico do tipo preventiva.
type AtividadeManutencao struct {
	ID               string
	ConstrutoraID    string
	EmpreendimentoID string
	Sistema          string // vazio = agrupada no balde "Outros"
	Descricao        string
	Periodicidade    Periodicidade
	Responsavel      string // "equipe local", "empresa capacitada", "empresa especializada"
	InicioVigencia   time.Time
	Ativa            bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OcorrenciasPrevistas conta quantas execuções a atividade prevê dentro da
// janela [de, ate], a partir de InicioVigencia e conforme a periodicidade.
func (a *AtividadeManutencao) OcorrenciasPrevistas(de, ate time.Time) int {
	meses := a.Periodicidade.Meses()
	if meses == 0 || !a.Ativa || ate.Before(de) {
		return 0
	}
	n := 0
	for t := a.InicioVigencia; !t.After(ate); t = t.AddDate(0, meses, 0) {
		if !t.Before(de) {
			n++
		}
	}
	return n
}

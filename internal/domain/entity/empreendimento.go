package entity

import "time"

// Empreendimento representa um edifício/condomínio entregue (ou em entrega)
// por uma construtora.
//
// HabiteSe é o "dia zero" dos prazos de garantia (NBR 17170); quando ausente,
// usa-se DataEntrega como referência. Ambas podem estar vazias enquanto a obra
// não é entregue — nesse caso as janelas de garantia ficam Pendentes.
type Empreendimento struct {
	ID            string
	ConstrutoraID string
	Nome          string
	Endereco      string
	Cidade        string
	UF            string
	HabiteSe      *time.Time // data do habite-se (pode ser futura)
	DataEntrega   *time.Time // entrega das chaves / assembleia de instalação
	SindicoNome   string
	SindicoEmail  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DataReferencia devolve a data-base para cálculo de garantia: HabiteSe se
// presente, senão DataEntrega, senão nil (janelas Pendentes).
func (e *Empreendimento) DataReferencia() *time.Time {
	if e.HabiteSe != nil {
		return e.HabiteSe
	}
	return e.DataEntrega
}

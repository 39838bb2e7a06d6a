package entity

import "time"

// Construtora é o tenant da plataforma: a incorporadora/construtora responsável
// pelos empreendimentos cadastrados. Todo dado operacional é particionado por
// ConstrutoraID.
type Construtora struct {
	ID        string
	Nome      string
	CNPJ      string
	Email     string
	Telefone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

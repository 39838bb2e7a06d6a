package entity

import "time"

// Prestador é uma empresa/profissional que atende ordens de serviço via
// marketplace de orçamentos.
type Prestador struct {
	ID            string
	Nome          string
	CNPJ          string
	Email         string
	Telefone      string
	Especialidade string // ex.: "impermeabilização", "elétrica"
	Cidade        string
	UF            string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

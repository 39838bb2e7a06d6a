// seed popula o banco com dados de demonstração: uma construtora, um
// empreendimento entregue, plano de manutenção preventiva, prestadores e as
// regras de SLA padrão.
//
// Uso: go run ./cmd/seed
// Idempotência simples: IDs fixos; reexecutar sobre um banco já semeado falha
// nas constraints únicas sem corromper nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/predialtech/garantia-api/internal/domain/entity"
	"github.com/predialtech/garantia-api/internal/domain/sla"
	"github.com/predialtech/garantia-api/internal/infrastructure/postgres"
	"github.com/predialtech/garantia-api/pkg/config"
)

const (
	construtoraID    = "11111111-1111-1111-1111-111111111111"
	empreendimentoID = "22222222-2222-2222-2222-222222222222"
	prestadorID      = "33333333-3333-3333-3333-333333333333"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	// Construtora (tenant)
	_, err = pool.Exec(ctx, `
		INSERT INTO construtoras (id, nome, cnpj, email, telefone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		construtoraID, "Construtora Horizonte Ltda", "12.345.678/0001-90",
		"contato@horizonte.com.br", "+55 11 4002-8922", now,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed construtora: %v\n", err)
		os.Exit(1)
	}

	// Empreendimento entregue há 2 anos
	habiteSe := now.AddDate(-2, 0, 0)
	empRepo := postgres.NewEmpreendimentoRepository(pool)
	if err := empRepo.Create(ctx, &entity.Empreendimento{
		ID:            empreendimentoID,
		ConstrutoraID: construtoraID,
		Nome:          "Residencial Vista do Parque",
		Endereco:      "Rua das Figueiras, 500",
		Cidade:        "São Paulo",
		UF:            "SP",
		HabiteSe:      &habiteSe,
		SindicoNome:   "Maria Aparecida Souza",
		SindicoEmail:  "sindica@vistadoparque.com.br",
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "seed empreendimento: %v\n", err)
		os.Exit(1)
	}

	// Plano de manutenção preventiva (NBR 5674)
	atvRepo := postgres.NewAtividadeManutencaoRepository(pool)
	atividades := []entity.AtividadeManutencao{
		{
			ID:      "aaaaaaaa-0000-0000-0000-000000000001",
			Sistema: "Impermeabilização", Descricao: "Inspeção de lajes e calhas",
			Periodicidade: entity.PeriodicidadeSemestral, Responsavel: "empresa especializada",
		},
		{
			ID:      "aaaaaaaa-0000-0000-0000-000000000002",
			Sistema: "Instalações hidráulicas", Descricao: "Limpeza de reservatórios",
			Periodicidade: entity.PeriodicidadeSemestral, Responsavel: "empresa capacitada",
		},
		{
			ID:      "aaaaaaaa-0000-0000-0000-000000000003",
			Sistema: "Esquadrias", Descricao: "Regulagem e lubrificação de esquadrias",
			Periodicidade: entity.PeriodicidadeAnual, Responsavel: "equipe local",
		},
	}
	for i := range atividades {
		a := &atividades[i]
		a.ConstrutoraID = construtoraID
		a.EmpreendimentoID = empreendimentoID
		a.InicioVigencia = habiteSe
		a.Ativa = true
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := atvRepo.Create(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "seed atividade %s: %v\n", a.Descricao, err)
			os.Exit(1)
		}
	}

	// Prestador de demonstração
	prestRepo := postgres.NewPrestadorRepository(pool)
	if err := prestRepo.Create(ctx, &entity.Prestador{
		ID:            prestadorID,
		Nome:          "Impermax Serviços de Impermeabilização",
		CNPJ:          "98.765.432/0001-10",
		Email:         "orcamentos@impermax.com.br",
		Especialidade: "impermeabilização",
		Cidade:        "São Paulo",
		UF:            "SP",
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "seed prestador: %v\n", err)
		os.Exit(1)
	}

	// Regras de SLA padrão da construtora
	slaRepo := postgres.NewSLARuleRepository(pool)
	if err := slaRepo.Replace(ctx, construtoraID, sla.DefaultRules()); err != nil {
		fmt.Fprintf(os.Stderr, "seed regras de SLA: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("seed concluído:")
	fmt.Printf("  construtora:    %s\n", construtoraID)
	fmt.Printf("  empreendimento: %s\n", empreendimentoID)
	fmt.Printf("  prestador:      %s\n", prestadorID)
}

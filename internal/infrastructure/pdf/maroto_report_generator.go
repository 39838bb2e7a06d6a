// Package pdf implementa a geração do Relatório de Conformidade de manutenção
// (NBR 5674) de um empreendimento.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome do empreendimento │ Período do relatório       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Conformidade geral + situação (adequada/em risco)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Sistema | Previstas | Concluídas | Conformidade     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NÃO CONFORMIDADES: lista de pendências                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/application/report"
	"github.com/predialtech/garantia-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 87, Blue: 63}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateComplianceReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateComplianceReport(
	_ context.Context,
	emp *entity.Empreendimento,
	conf *dto.ConformidadeDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Conformidade de Manutenção", true).
		WithAuthor(emp.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(emp, conf))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumoRow(conf))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableSistemaRows(conf.PorSistema) {
		m.AddRows(r)
	}

	if len(conf.NaoConformidades) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range naoConformidadeRows(conf.NaoConformidades) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome do empreendimento (esq) e período do relatório (dir).
func headerRow(emp *entity.Empreendimento, conf *dto.ConformidadeDTO) core.Row {
	periodo := fmt.Sprintf("%s a %s",
		conf.PeriodoInicio.Format("02/01/2006"),
		conf.PeriodoFim.Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(emp.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s - %s/%s", emp.Endereco, emp.Cidade, emp.UF), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Relatório de Conformidade", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// resumoRow: conformidade geral e situação.
func resumoRow(conf *dto.ConformidadeDTO) core.Row {
	situacao := "Manutenção em dia"
	cor := colorPrimary
	if conf.EmRisco {
		situacao = "EM RISCO: conformidade abaixo do limite aceitável"
		cor = colorAlert
	}
	return row.New(14).Add(
		col.New(4).Add(
			text.New(fmt.Sprintf("Conformidade geral: %d%%", conf.Percentual), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 3,
			}),
		),
		col.New(8).Add(
			text.New(situacao, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Color: cor, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	th := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(6).Add(text.New("Sistema construtivo", th)),
		col.New(2).Add(text.New("Previstas", mergeAlign(th, align.Center))),
		col.New(2).Add(text.New("Concluídas", mergeAlign(th, align.Center))),
		col.New(2).Add(text.New("Conformidade", mergeAlign(th, align.Right))),
	)
}

func tableSistemaRows(sistemas []dto.SistemaConformidadeDTO) []core.Row {
	td := props.Text{Size: 9, Top: 1}
	rows := make([]core.Row, 0, len(sistemas))
	for _, s := range sistemas {
		pct := props.Text{Size: 9, Top: 1, Align: align.Right}
		if s.Percentual < 70 {
			pct.Color = colorAlert
			pct.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(s.Sistema, td)),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Previstas), mergeAlign(td, align.Center))),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Concluidas), mergeAlign(td, align.Center))),
			col.New(2).Add(text.New(fmt.Sprintf("%d%%", s.Percentual), pct)),
		))
	}
	return rows
}

func naoConformidadeRows(itens []string) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Não conformidades", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorAlert, Top: 1,
			}),
		)),
	}
	for _, item := range itens {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("- "+item, props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}

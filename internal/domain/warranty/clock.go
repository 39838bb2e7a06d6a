package warranty

import (
	"time"

	"github.com/predialtech/garantia-api/internal/domain"
)

// ComputeWindow deriva a janela de garantia de um prazo contra uma data de
// referência (habite-se/entrega).
//
// Regras:
//   - inicio nil → StatusPendente, sem vencimento, Dias indefinido (zero).
//   - vencimento = inicio + PrazoAnos anos-calendário (preserva dia/mês; a
//     adição de anos segue o calendário, não um offset fixo de 365×N dias).
//   - StatusVigente enquanto hoje <= vencimento; inclusive com início futuro
//     (obra ainda não entregue — a cobertura começa lá, não é erro).
//   - Dias = vencimento − hoje em dias; quando expirada, a contagem de dias de
//     atraso inclui o dia do vencimento (vencida há N = hoje − vencimento + 1).
//
// Entrada malformada (prazo não positivo) retorna ValidationError: propagar um
// vencimento errado é pior que falhar com erro descritivo.
func ComputeWindow(term Term, inicio *time.Time, hoje time.Time) (Window, error) {
	if err := term.Validate(); err != nil {
		return Window{}, err
	}
	if hoje.IsZero() {
		return Window{}, domain.NewValidationError("hoje", "data de referência zerada")
	}

	if inicio == nil {
		return Window{Term: term, Status: StatusPendente}, nil
	}
	if inicio.IsZero() {
		return Window{}, domain.NewValidationError("inicio", "data de início zerada")
	}

	start := truncateDay(*inicio)
	today := truncateDay(hoje)
	venc := AddCalendarYears(start, term.PrazoAnos)

	w := Window{Term: term, Inicio: &start, Vencimento: &venc}
	dias := DaysBetween(today, venc)
	if today.After(venc) {
		w.Status = StatusExpirada
		w.Dias = dias - 1 // conta o dia do vencimento no atraso
	} else {
		w.Status = StatusVigente
		w.Dias = dias
	}
	return w, nil
}

// AddCalendarYears soma anos-calendário preservando dia/mês (29/02 + N anos não
// bissextos normaliza para 01/03, comportamento padrão de calendário).
func AddCalendarYears(d time.Time, years int) time.Time {
	return d.AddDate(years, 0, 0)
}

// DaysBetween devolve a diferença b − a em dias inteiros (datas truncadas ao
// dia, UTC, imune a DST).
func DaysBetween(a, b time.Time) int {
	ua := truncateDay(a)
	ub := truncateDay(b)
	return int(ub.Sub(ua).Hours() / 24)
}

// truncateDay descarta a parte de hora e fixa UTC, para aritmética de dias
// estável entre fusos.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

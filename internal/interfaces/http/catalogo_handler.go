package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/predialtech/garantia-api/internal/application/dto"
	"github.com/predialtech/garantia-api/internal/domain/warranty"
)

// CatalogoHandler expõe o catálogo de prazos de garantia (NBR 17170). Dados de
// referência, rota pública.
type CatalogoHandler struct{}

// NewCatalogoHandler constrói o handler.
func NewCatalogoHandler() *CatalogoHandler {
	return &CatalogoHandler{}
}

// List godoc
// @Summary      Catálogo de prazos de garantia
// @Description  Busca textual opcional via ?q= (insensível a acentos e caixa).
// @Tags         catalogo
// @Produce      json
// @Param        q  query  string  false  "Termo de busca"
// @Success      200  {array}  dto.TermoCatalogoResponse
// @Router       /api/catalogo/garantias [get]
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	var termos []warranty.Term
	if q := c.Query("q"); q != "" {
		termos = warranty.Search(q)
	} else {
		termos = warranty.Catalog()
	}
	out := make([]dto.TermoCatalogoResponse, 0, len(termos))
	for _, t := range termos {
		out = append(out, dto.TermoCatalogoResponse{
			Sistema:    t.Sistema,
			Descricao:  t.Descricao,
			ModosFalha: t.ModosFalha,
			PrazoAnos:  t.PrazoAnos,
			Tipo:       string(t.Kind),
			Palavras:   t.Palavras,
		})
	}
	return c.JSON(out)
}

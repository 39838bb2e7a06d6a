package warranty

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catálogo de prazos de garantia por sistema construtivo, conforme NBR 17170 e
// tabela de prazos do manual do proprietário. Itens de solidez e segurança
// (5 anos) são garantia legal; os demais são prazos ofertados.
//
// Dados de referência: somente leitura em runtime.
var catalog = []Term{
	{
		Sistema:    "Fundações",
		Descricao:  "Fundações e elementos de contenção",
		ModosFalha: "Comprometimento da solidez: recalques, fissuras estruturais, deslocamentos",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"fundação", "estaca", "sapata", "recalque", "contenção"},
	},
	{
		Sistema:    "Estrutura",
		Descricao:  "Estrutura de concreto, metálica ou mista",
		ModosFalha: "Fissuras, flechas excessivas, corrosão de armadura, ruptura de elementos",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"pilar", "viga", "laje", "concreto", "armadura", "fissura"},
	},
	{
		Sistema:    "Impermeabilização",
		Descricao:  "Impermeabilização de áreas molhadas, coberturas e reservatórios",
		ModosFalha: "Infiltração, umidade ascendente, falha de manta ou membrana",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"infiltração", "umidade", "manta", "vazamento", "reservatório", "laje"},
	},
	{
		Sistema:    "Vedações - Paredes e Painéis",
		Descricao:  "Paredes de vedação internas e externas, painéis e divisórias",
		ModosFalha: "Fissuras que comprometam estanqueidade ou segurança, desaprumo",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"parede", "alvenaria", "drywall", "fissura", "trinca"},
	},
	{
		Sistema:    "Cobertura",
		Descricao:  "Telhados, calhas, rufos e sistema de cobertura",
		ModosFalha: "Goteiras, deslocamento de telhas, falha de fixação",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"telhado", "telha", "calha", "rufo", "goteira"},
	},
	{
		Sistema:    "Instalações Hidrossanitárias - Tubulações",
		Descricao:  "Colunas de água fria/quente, esgoto e águas pluviais embutidas",
		ModosFalha: "Vazamentos em tubulações embutidas, obstruções por falha executiva",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"hidráulica", "tubulação", "esgoto", "coluna", "vazamento", "água"},
	},
	{
		Sistema:    "Instalações Elétricas - Infraestrutura",
		Descricao:  "Eletrodutos, quadros e cabeamento embutido",
		ModosFalha: "Falha de isolamento, superaquecimento de circuitos, curto em rede embutida",
		PrazoAnos:  5,
		Kind:       KindLegal,
		Palavras:   []string{"elétrica", "eletroduto", "quadro", "disjuntor", "circuito"},
	},
	{
		Sistema:    "Pisos Internos - Revestimento",
		Descricao:  "Revestimentos cerâmicos, porcelanato e pedras em pisos internos",
		ModosFalha: "Desplacamento, som cavo, fissuras no revestimento por falha de aderência",
		PrazoAnos:  3,
		Kind:       KindOffered,
		Palavras:   []string{"piso", "cerâmica", "porcelanato", "desplacamento", "rejunte"},
	},
	{
		Sistema:    "Revestimentos de Parede e Teto",
		Descricao:  "Azulejos, revestimentos e forros aderidos em paredes e tetos",
		ModosFalha: "Desplacamento, fissuras de revestimento, queda de forro aderido",
		PrazoAnos:  3,
		Kind:       KindOffered,
		Palavras:   []string{"azulejo", "revestimento", "forro", "reboco", "desplacamento"},
	},
	{
		Sistema:    "Esquadrias de Alumínio e PVC",
		Descricao:  "Janelas, portas e caixilhos de alumínio ou PVC",
		ModosFalha: "Empenamento, falha de vedação, oxidação precoce de perfis",
		PrazoAnos:  2,
		Kind:       KindOffered,
		Palavras:   []string{"esquadria", "janela", "caixilho", "alumínio", "pvc", "vedação"},
	},
	{
		Sistema:    "Esquadrias de Madeira",
		Descricao:  "Portas, batentes e guarnições de madeira",
		ModosFalha: "Empenamento, descolamento de lâminas, ataque de pragas",
		PrazoAnos:  1,
		Kind:       KindOffered,
		Palavras:   []string{"porta", "batente", "madeira", "empenamento"},
	},
	{
		Sistema:    "Pintura",
		Descricao:  "Pintura interna e externa, texturas",
		ModosFalha: "Descascamento, bolhas, desbotamento prematuro por falha de aplicação",
		PrazoAnos:  2,
		Kind:       KindOffered,
		Palavras:   []string{"pintura", "tinta", "textura", "descascamento", "bolha"},
	},
	{
		Sistema:    "Vidros",
		Descricao:  "Vidros e espelhos instalados pela construtora",
		ModosFalha: "Falha de fixação ou vedação (quebra por mau uso excluída)",
		PrazoAnos:  1,
		Kind:       KindOffered,
		Palavras:   []string{"vidro", "espelho", "fixação"},
	},
	{
		Sistema:    "Louças, Metais e Equipamentos",
		Descricao:  "Louças sanitárias, metais, registros e equipamentos instalados",
		ModosFalha: "Defeito de fabricação/instalação: vazamento em registros, trincas de louça",
		PrazoAnos:  1,
		Kind:       KindOffered,
		Palavras:   []string{"louça", "metal", "registro", "torneira", "vaso", "pia"},
	},
}

// Catalog devolve uma cópia do catálogo completo (protege os dados de
// referência contra mutação pelo chamador).
func Catalog() []Term {
	out := make([]Term, len(catalog))
	copy(out, catalog)
	return out
}

// FindBySystem busca o prazo pelo nome exato do sistema construtivo.
func FindBySystem(sistema string) (Term, bool) {
	for _, t := range catalog {
		if t.Sistema == sistema {
			return t, true
		}
	}
	return Term{}, false
}

// Search faz busca textual no catálogo: sistema, descrição, modos de falha e
// palavras-chave, insensível a maiúsculas e acentos ("fundacao" encontra
// "Fundações"). Consulta vazia devolve o catálogo inteiro.
func Search(consulta string) []Term {
	q := Normalize(consulta)
	if q == "" {
		return Catalog()
	}
	var out []Term
	for _, t := range catalog {
		if matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t Term, q string) bool {
	if strings.Contains(Normalize(t.Sistema), q) ||
		strings.Contains(Normalize(t.Descricao), q) ||
		strings.Contains(Normalize(t.ModosFalha), q) {
		return true
	}
	for _, p := range t.Palavras {
		if strings.Contains(Normalize(p), q) {
			return true
		}
	}
	return false
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devolve o texto minúsculo e sem acentos, para comparação.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Package taxonomy infers editorial lanes for documents and class/group
// labels for catalog sources. All inference is keyword and domain based; the
// core does no semantic NLP.
package taxonomy

import (
	"net/url"
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

func normalize(value string) string {
	return multiSpaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}

// laneKeywords is ordered: on equal (hits, priority) the earlier lane wins.
var laneKeywords = []struct {
	lane     string
	keywords []string
}{
	{"justica", []string{"stf", "stj", "tse", "justica", "tribunal", "mpf", "ministerio publico", "operacao"}},
	{"politica", []string{"politica", "congresso", "senado", "camara", "planalto", "presidente", "eleicao"}},
	{"economia", []string{"economia", "mercado", "bolsa", "selic", "copom", "inflacao", "fiscal", "orcamento"}},
	{"seguranca", []string{"seguranca", "policia", "crime", "faccao", "prisao", "violencia"}},
	{"saude", []string{"saude", "sus", "hospital", "anvisa", "vacin", "epidemia"}},
	{"educacao", []string{"educacao", "mec", "enem", "fies", "sisu", "universidade", "escola", "professor", "aluno"}},
	{"internacional", []string{"itamaraty", "onu", "mercosul", "internacional", "g20", "g7"}},
	{"meio_ambiente", []string{"meio ambiente", "clima", "amazonia", "desmatamento", "queimada", "ibama", "icmbio", "cop30"}},
	{"direitos_humanos", []string{"direitos humanos", "racismo", "violencia policial", "feminicidio", "indigena", "quilombola"}},
	{"tecnologia", []string{"tecnologia", "ia", "inteligencia artificial", "chip", "software"}},
	{"infraestrutura", []string{"rodovia", "ferrovia", "porto", "aeroporto", "saneamento", "obras", "mobilidade urbana", "energia"}},
	{"agronegocio", []string{"agronegocio", "agro", "safra", "conab", "soja", "milho", "pecuaria", "carne"}},
	{"esportes", []string{"futebol", "campeonato", "rodada", "gol", "time", "partida", "olimpiada", "olimpíada", "copa"}},
	{"entretenimento", []string{"bbb", "reality", "famoso", "celebridade", "novela", "streaming", "serie", "série", "show"}},
	{"cultura", []string{"cultura", "filme", "teatro", "musica", "literatura"}},
	{"opiniao", []string{"opiniao", "editorial", "coluna", "artigo"}},
}

// lanePriority breaks keyword-hit ties; lanes absent here weigh 1.
var lanePriority = map[string]int{
	"justica":       4,
	"politica":      3,
	"economia":      3,
	"seguranca":     3,
	"saude":         2,
	"educacao":      2,
	"internacional": 2,
	"meio_ambiente": 2,
}

var knownLanes = func() map[string]struct{} {
	m := map[string]struct{}{"hardnews": {}}
	for _, e := range laneKeywords {
		m[e.lane] = struct{}{}
	}
	return m
}()

// LaneHints carries every signal the organizer may have for lane inference.
type LaneHints struct {
	ExplicitLane string
	Editoria     string
	Topic        string
	Title        string
	Snippet      string
	SourceScope  string
}

// InferLane resolves the editorial lane with stable precedence: explicit
// lane, then keyword hits over title+snippet, then topic, then editoria,
// then source scope, falling back to "geral".
func InferLane(h LaneHints) string {
	if lane := normalize(h.ExplicitLane); lane != "" {
		if _, ok := knownLanes[lane]; ok {
			return lane
		}
	}

	topic := strings.ReplaceAll(normalize(h.Topic), " ", "_")
	if _, ok := knownLanes[topic]; !ok {
		topic = ""
	}
	editoria := strings.ReplaceAll(normalize(h.Editoria), " ", "_")
	if _, ok := knownLanes[editoria]; !ok {
		editoria = ""
	}

	text := normalize(h.Title + " " + h.Snippet)
	bestLane := ""
	bestHits := 0
	bestPriority := 0
	for _, e := range laneKeywords {
		hits := 0
		for _, kw := range e.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		priority := lanePriority[e.lane]
		if priority == 0 {
			priority = 1
		}
		if hits > bestHits || (hits == bestHits && priority > bestPriority) {
			bestLane, bestHits, bestPriority = e.lane, hits, priority
		}
	}
	if bestLane != "" {
		return bestLane
	}

	if topic != "" && topic != "geral" {
		return topic
	}
	if editoria != "" && editoria != "geral" {
		return editoria
	}

	switch normalize(h.SourceScope) {
	case "federal", "estadual", "municipal":
		return "politica"
	case "internacional":
		return "internacional"
	}
	return "geral"
}

var officialHostSuffixes = []string{
	"gov.br", "senado.leg.br", "camara.leg.br", "stf.jus.br", "stj.jus.br",
	"tse.jus.br", "mpf.mp.br", "agenciabrasil.ebc.com.br", "ibge.gov.br", "fiocruz.br",
}

var competitorHostSuffixes = []string{
	"news.google.com", "g1.globo.com", "globo.com", "uol.com.br",
	"folha.uol.com.br", "redir.folha.com.br", "estadao.com.br",
	"cnnbrasil.com.br", "metropoles.com", "infomoney.com.br", "exame.com",
	"terra.com.br", "r7.com", "operamundi.uol.com.br",
}

var independentHostSuffixes = []string{
	"revistaforum.com.br", "brasildefato.com.br", "tvtnews.com.br",
	"diariodocentrodomundo.com.br", "cartacapital.com.br", "apublica.org",
	"intercept.com.br", "nexojornal.com.br", "poder360.com.br", "nodal.am",
}

var specializedHostSuffixes = []string{"jota.info", "conjur.com.br"}

func hostMatchesAny(host string, suffixes []string) bool {
	host = normalize(host)
	if host == "" {
		return false
	}
	for _, suffix := range suffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}

// InferSourceClass classifies a catalog source as primary (official),
// competitor, independent, specialized or other. An already-known explicit
// class wins.
func InferSourceClass(sourceName, sourceURL, currentClass string) string {
	switch normalize(currentClass) {
	case "primary", "competitor", "independent", "specialized":
		return normalize(currentClass)
	}

	host := ""
	if u, err := url.Parse(strings.TrimSpace(sourceURL)); err == nil {
		host = u.Hostname()
	}
	switch {
	case hostMatchesAny(host, officialHostSuffixes):
		return "primary"
	case hostMatchesAny(host, specializedHostSuffixes):
		return "specialized"
	case hostMatchesAny(host, competitorHostSuffixes):
		return "competitor"
	case hostMatchesAny(host, independentHostSuffixes):
		return "independent"
	}

	blob := normalize(sourceName + " " + sourceURL)
	containsAny := func(tokens ...string) bool {
		for _, t := range tokens {
			if strings.Contains(blob, t) {
				return true
			}
		}
		return false
	}
	switch {
	case containsAny("poder360", "jota", "conjur"):
		return "specialized"
	case containsAny("uol", "folha", "globo", "g1", "estadao", "cnn brasil", "metropoles", "opera mundi", "r7", "terra"):
		return "competitor"
	case containsAny("revista forum", "brasil de fato", "intercept", "apublica", "nexo", "nodal"):
		return "independent"
	case containsAny("tribunal", "ministerio", "camara", "senado", "prefeitura", "governo"):
		return "primary"
	}
	return "other"
}

// mediaGroupHostSuffixes binds hosts to editorial media groups; the longest
// matching suffix wins.
var mediaGroupHostSuffixes = map[string][]string{
	"google_news":    {"news.google.com"},
	"uol":            {"uol.com.br", "operamundi.uol.com.br"},
	"globo":          {"globo.com"},
	"folha":          {"folha.uol.com.br", "redir.folha.com.br"},
	"estadao":        {"estadao.com.br"},
	"cnn_brasil":     {"cnnbrasil.com.br"},
	"metropoles":     {"metropoles.com"},
	"r7":             {"r7.com"},
	"terra":          {"terra.com.br"},
	"jp":             {"jp.com.br"},
	"infomoney":      {"infomoney.com.br"},
	"exame":          {"exame.com"},
	"forum":          {"revistaforum.com.br"},
	"brasil_de_fato": {"brasildefato.com.br"},
	"intercept":      {"intercept.com.br"},
	"apublica":       {"apublica.org"},
	"nexo":           {"nexojornal.com.br"},
	"nodal":          {"nodal.am"},
}

var genericSourceGroups = map[string]struct{}{
	"": {}, "mainstream": {}, "oficial": {}, "independente": {},
	"especializado": {}, "outros": {}, "legacy": {},
}

var groupNameKeywords = []struct {
	group  string
	tokens []string
}{
	{"uol", []string{"uol", "universo online", "opera mundi", "operamundi"}},
	{"globo", []string{"globo", "g1", "valor economico", "oglobo"}},
	{"folha", []string{"folha", "folha de s paulo"}},
	{"estadao", []string{"estadao", "o estado de s paulo"}},
	{"cnn_brasil", []string{"cnn brasil"}},
	{"metropoles", []string{"metropoles"}},
	{"r7", []string{"r7", "record"}},
	{"terra", []string{"terra"}},
	{"jp", []string{"jovem pan", "jp.com"}},
	{"infomoney", []string{"infomoney"}},
	{"exame", []string{"exame"}},
	{"forum", []string{"revista forum"}},
	{"brasil_de_fato", []string{"brasil de fato"}},
	{"nodal", []string{"nodal"}},
}

// InferSourceGroup resolves the media group of a source: host suffix first
// (longest wins), then a non-generic explicit group, then name keywords,
// then a generic label derived from the source class.
func InferSourceGroup(sourceName, sourceURL, sourceClass, explicitGroup string) string {
	explicit := normalize(explicitGroup)

	host := ""
	if u, err := url.Parse(strings.TrimSpace(sourceURL)); err == nil {
		host = normalize(u.Hostname())
	}
	hostGroup := ""
	hostGroupLen := -1
	for group, suffixes := range mediaGroupHostSuffixes {
		for _, suffix := range suffixes {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				if len(suffix) > hostGroupLen {
					hostGroup, hostGroupLen = group, len(suffix)
				}
			}
		}
	}
	if hostGroup != "" {
		if _, generic := genericSourceGroups[explicit]; explicit != "" && !generic && explicit != hostGroup {
			return explicit
		}
		return hostGroup
	}
	if explicit != "" {
		return explicit
	}

	name := normalize(sourceName)
	for _, e := range groupNameKeywords {
		for _, token := range e.tokens {
			if strings.Contains(name, token) {
				return e.group
			}
		}
	}

	switch normalize(sourceClass) {
	case "primary":
		return "oficial"
	case "competitor":
		return "mainstream"
	case "independent":
		return "independente"
	case "specialized":
		return "especializado"
	case "legacy":
		return "legacy"
	}
	return "outros"
}

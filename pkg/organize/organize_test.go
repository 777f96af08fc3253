package organize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpautas/radar/ent"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
	entevent "github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/pkg/cache"
	"github.com/radarpautas/radar/pkg/config"
	"github.com/radarpautas/radar/pkg/database"
	"github.com/radarpautas/radar/pkg/merge"
	"github.com/radarpautas/radar/pkg/queue"
	"github.com/radarpautas/radar/pkg/state"
	"github.com/radarpautas/radar/pkg/yield"
	testdb "github.com/radarpautas/radar/test/database"
)

const investigationText = `A Controladoria-Geral da União abriu investigação sobre
contratos de informática firmados pelo ministério. Os repasses somam R$ 2,5
milhões e envolvem a empresa de CNPJ 12.345.678/0001-99, com sede em Brasília.
Os contratos foram assinados em 05/03/2025 segundo documentos publicados no
portal oficial do governo federal.`

const unrelatedText = `O campeonato estadual teve rodada movimentada neste fim
de semana, com três partidas decididas nos minutos finais. O time da capital
venceu fora de casa e assumiu a liderança da tabela, enquanto o lanterna segue
sem vencer há oito jogos consecutivos.`

type orgFixture struct {
	t       *testing.T
	svc     *Service
	client  *database.Client
	queues  *queue.Queues
	profile *config.SourceProfile
}

func newOrgFixture(t *testing.T) *orgFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	c, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	src, err := client.Source.Create().
		SetDomain("exemplo.gov.br").
		SetName("Diário Exemplo").
		SetTier(2).
		SetProfile(map[string]interface{}{}).
		Save(context.Background())
	require.NoError(t, err)

	queues := queue.NewQueues(64)
	return &orgFixture{
		t:      t,
		svc:    NewService(client, queues, yield.NewMonitor(c)),
		client: client,
		queues: queues,
		profile: &config.SourceProfile{
			SourceID: src.ID,
			Domain:   "exemplo.gov.br",
			Tier:     2,
			Language: "pt-BR",
			Pool:     config.PoolFast,
		},
	}
}

func (f *orgFixture) handle(url, title, text string) {
	f.t.Helper()
	sum := sha256.Sum256([]byte(title + url + text))
	task := queue.OrganizeTask{
		Profile:     f.profile,
		Text:        text,
		ContentHash: hex.EncodeToString(sum[:]),
		URL:         url,
		Title:       title,
	}
	require.NoError(f.t, f.svc.Handle(context.Background(), task))
}

func (f *orgFixture) eventOf(url string) *ent.Event {
	f.t.Helper()
	ctx := context.Background()
	doc, err := f.client.Document.Query().
		Where(document.URL(url)).
		Order(ent.Desc(document.FieldVersionNo)).
		First(ctx)
	require.NoError(f.t, err)
	link, err := f.client.EventDoc.Query().
		Where(eventdoc.DocID(doc.ID)).
		Only(ctx)
	require.NoError(f.t, err)
	ev, err := f.client.Event.Get(ctx, link.EventID)
	require.NoError(f.t, err)
	return ev
}

func TestHandleCreatesDocumentAndEvent(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	f.handle("https://exemplo.gov.br/noticias/cgu", "CGU abre investigação", investigationText)

	doc, err := f.client.Document.Query().
		Where(document.URL("https://exemplo.gov.br/noticias/cgu")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.VersionNo)
	assert.NotZero(t, doc.Simhash)
	assert.Equal(t, "pt-BR", doc.Language)

	anchors, err := f.client.DocAnchor.Query().
		Where(docanchor.DocID(doc.ID)).
		All(ctx)
	require.NoError(t, err)
	values := make(map[string]string)
	for _, a := range anchors {
		values[string(a.Type)] = a.Value
	}
	assert.Equal(t, "12345678000199", values["CNPJ"])
	assert.Equal(t, "BRL:2500000.00", values["VALOR"])
	assert.Equal(t, "2025-03-05", values["DATA"])

	ev := f.eventOf(doc.URL)
	assert.Equal(t, entevent.StatusHydrating, ev.Status)
	assert.Equal(t, 40.0, ev.ScorePlantao)

	link, err := f.client.EventDoc.Query().
		Where(eventdoc.DocID(doc.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, link.IsPrimary)

	assert.Equal(t, 1, f.queues.Score.Depth())
}

func TestHandleTier1BaseScore(t *testing.T) {
	f := newOrgFixture(t)
	f.profile.Tier = 1

	f.handle("https://exemplo.gov.br/noticias/cgu", "CGU abre investigação", investigationText)
	ev := f.eventOf("https://exemplo.gov.br/noticias/cgu")
	assert.Equal(t, 75.0, ev.ScorePlantao)
}

func TestHandleDropsUnchangedContent(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	f.handle("https://exemplo.gov.br/n1", "Título", investigationText)
	f.handle("https://exemplo.gov.br/n1", "Título", investigationText)

	count, err := f.client.Document.Query().
		Where(document.URL("https://exemplo.gov.br/n1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, f.queues.Score.Depth())
}

func TestHandleVersionsChangedContent(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	f.handle("https://exemplo.gov.br/n1", "Título", investigationText)
	first := f.eventOf("https://exemplo.gov.br/n1")

	updated := investigationText + `
Atualização: o ministério confirmou a suspensão preventiva dos contratos.`
	f.handle("https://exemplo.gov.br/n1", "Título", updated)

	docs, err := f.client.Document.Query().
		Where(document.URL("https://exemplo.gov.br/n1")).
		Order(ent.Asc(document.FieldVersionNo)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 2, docs[1].VersionNo)

	// The new version joins the first version's event, never a fresh one.
	link, err := f.client.EventDoc.Query().
		Where(eventdoc.DocID(docs[1].ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, link.EventID)
	assert.False(t, link.IsPrimary)
}

func TestHandleLinksByStrongAnchor(t *testing.T) {
	f := newOrgFixture(t)

	f.handle("https://exemplo.gov.br/n1", "CGU abre investigação", investigationText)

	followUp := `A empresa de CNPJ 12.345.678/0001-99 divulgou nota negando
irregularidades nos contratos investigados e afirmou que colabora com a
apuração conduzida pelos órgãos de controle.`
	f.handle("https://outra.com.br/nota", "Empresa nega irregularidades", followUp)

	assert.Equal(t, f.eventOf("https://exemplo.gov.br/n1").ID, f.eventOf("https://outra.com.br/nota").ID)
}

func TestHandleLinksBySimhash(t *testing.T) {
	f := newOrgFixture(t)

	// No strong anchors in either text; near-duplicate wording.
	f.handle("https://exemplo.gov.br/e1", "Rodada do campeonato", unrelatedText)

	slightlyEdited := `O campeonato estadual teve rodada movimentada neste fim
de semana, com três partidas decididas nos minutos finais. O time da capital
venceu fora de casa e assumiu a liderança da tabela, enquanto o lanterna segue
sem vencer há nove jogos consecutivos.`
	f.handle("https://outra.com.br/e2", "Rodada do campeonato", slightlyEdited)

	assert.Equal(t, f.eventOf("https://exemplo.gov.br/e1").ID, f.eventOf("https://outra.com.br/e2").ID)
}

func TestHandleUnrelatedTextsCreateSeparateEvents(t *testing.T) {
	f := newOrgFixture(t)

	f.handle("https://exemplo.gov.br/n1", "CGU abre investigação", investigationText)
	f.handle("https://exemplo.gov.br/n2", "Rodada do campeonato", unrelatedText)

	assert.NotEqual(t, f.eventOf("https://exemplo.gov.br/n1").ID, f.eventOf("https://exemplo.gov.br/n2").ID)
}

func TestHandleFollowsTombstones(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()

	f.handle("https://exemplo.gov.br/n1", "CGU abre investigação", investigationText)
	f.handle("https://exemplo.gov.br/n2", "Rodada do campeonato", unrelatedText)
	evA := f.eventOf("https://exemplo.gov.br/n1")
	evB := f.eventOf("https://exemplo.gov.br/n2")

	tx, err := f.client.Tx(ctx)
	require.NoError(t, err)
	_, err = merge.Merge(ctx, tx, evA.ID, evB.ID, state.ReasonEditorialMerge, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// A doc whose strong anchor points at the absorbed event lands on the
	// canonical one.
	followUp := `Nota sobre a empresa de CNPJ 12.345.678/0001-99 e os contratos
sob investigação divulgada nesta quinta-feira pelos advogados de defesa.`
	f.handle("https://outra.com.br/nota", "Nota da empresa", followUp)

	assert.Equal(t, evB.ID, f.eventOf("https://outra.com.br/nota").ID)
}

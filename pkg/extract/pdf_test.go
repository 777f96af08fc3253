package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func TestClusterCells(t *testing.T) {
	// Two wide gaps split the row into three cells.
	row := pdf.TextHorizontal{
		{X: 10, W: 30, S: "Órgão"},
		{X: 42, W: 20, S: " federal"},
		{X: 120, W: 40, S: "R$ 500,00"},
		{X: 240, W: 30, S: "2025"},
	}
	assert.Equal(t, []string{"Órgão federal", "R$ 500,00", "2025"}, clusterCells(row))
}

func TestClusterCellsSingleRun(t *testing.T) {
	row := pdf.TextHorizontal{
		{X: 10, W: 30, S: "Linha"},
		{X: 41, W: 30, S: " corrida"},
	}
	assert.Equal(t, []string{"Linha corrida"}, clusterCells(row))
}

func TestClusterCellsEmpty(t *testing.T) {
	assert.Empty(t, clusterCells(nil))
	assert.Empty(t, clusterCells(pdf.TextHorizontal{{X: 0, W: 1, S: "   "}}))
}

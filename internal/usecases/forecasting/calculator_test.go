package forecasting

import (
	"testing"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWeightedPipelineValue(t *testing.T) {
	deals := []*domain.Deal{
		{Amount: 100000, Probability: floatPtr(95)},
		{Amount: 50000, Probability: nil}, // probabilidade ausente pesa zero
	}

	assert.Equal(t, 95000.0, WeightedPipelineValue(deals))
}

func TestCalculateBase(t *testing.T) {
	deals := []*domain.Deal{
		{ID: "DL0001", Amount: 100000, Probability: floatPtr(95)},
		{ID: "DL0002", Amount: 50000, Probability: floatPtr(75)},
		{ID: "DL0003", Amount: 40000, Probability: floatPtr(50)},
		{ID: "DL0004", Amount: 10000, Probability: floatPtr(10)},
	}

	base := CalculateBase(deals, 20000)

	assert.Equal(t, 100000.0, base.Committed)
	assert.Equal(t, 50000.0, base.BestCase)
	assert.Equal(t, 40000.0, base.Pipeline)
	assert.Equal(t, 10000.0, base.Omitted)
	assert.Equal(t, 20000.0, base.Closed)
	assert.Equal(t, 4, base.DealCount)

	// 95000 + 37500 + 20000 + 1000
	assert.Equal(t, 153500.0, base.WeightedPipeline)
	assert.Equal(t, 173500.0, base.PredictedRevenue)

	// 50 + 0.5*40 (committed) + 0.25*20 (best case) + 4*0.5 (volume)
	assert.Equal(t, 77.0, base.Confidence)
}

func TestCalculateBase_SemNegocios(t *testing.T) {
	base := CalculateBase(nil, 15000)

	assert.Equal(t, 0, base.DealCount)
	assert.Equal(t, 15000.0, base.Closed)
	assert.Equal(t, 15000.0, base.PredictedRevenue)
	assert.Equal(t, 0.0, base.Confidence)
}

func TestCalculateBase_NegociosSemValor(t *testing.T) {
	deals := []*domain.Deal{
		{ID: "DL0001", Amount: 0, Probability: floatPtr(50)},
	}

	base := CalculateBase(deals, 0)

	// Prior neutro quando há negócios mas nenhum valor em aberto
	assert.Equal(t, 50.0, base.Confidence)
}

func TestCalculateBase_ConfiancaMonotonicaNaProporcaoCommitted(t *testing.T) {
	// Dez negócios de mesmo valor; a cada passo um negócio pipeline vira
	// committed e a confiança nunca pode diminuir
	previous := -1.0
	for committed := 0; committed <= 10; committed++ {
		deals := make([]*domain.Deal, 0, 10)
		for i := 0; i < 10; i++ {
			probability := 50.0
			if i < committed {
				probability = 95.0
			}
			deals = append(deals, &domain.Deal{Amount: 10000, Probability: floatPtr(probability)})
		}

		confidence := CalculateBase(deals, 0).Confidence

		assert.GreaterOrEqualf(t, confidence, previous,
			"confiança caiu com %d negócios committed", committed)
		previous = confidence
	}
}

func TestCalculateBase_BonusDeVolumeLimitado(t *testing.T) {
	// 30 negócios committed de mesmo valor: bônus de volume satura em 10
	deals := make([]*domain.Deal, 0, 30)
	for i := 0; i < 30; i++ {
		deals = append(deals, &domain.Deal{Amount: 1000, Probability: floatPtr(95)})
	}

	base := CalculateBase(deals, 0)

	// 50 + 1.0*40 + 10 (bônus saturado), limitado a 100
	assert.Equal(t, 100.0, base.Confidence)
}

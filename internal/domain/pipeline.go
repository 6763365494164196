package domain

// PipelineStage representa uma fase nomeada do funil de vendas com uma
// probabilidade padrão associada
type PipelineStage struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Order              int     `json:"order"`
	DefaultProbability float64 `json:"default_probability"`
	IsWon              bool    `json:"is_won"`
	IsLost             bool    `json:"is_lost"`
}

const DefaultPipelineID = "default"

// PipelineStages é a configuração estática dos estágios do funil padrão.
// Dados de seed, não estado de runtime.
var PipelineStages = []PipelineStage{
	{ID: "lead", Name: "Lead", Order: 1, DefaultProbability: 10},
	{ID: "qualified", Name: "Qualificado", Order: 2, DefaultProbability: 25},
	{ID: "proposal", Name: "Proposta", Order: 3, DefaultProbability: 50},
	{ID: "negotiation", Name: "Negociação", Order: 4, DefaultProbability: 75},
	{ID: "closed_won", Name: "Ganho", Order: 5, DefaultProbability: 100, IsWon: true},
	{ID: "closed_lost", Name: "Perdido", Order: 6, DefaultProbability: 0, IsLost: true},
}

// StageByID busca um estágio do funil padrão pelo ID
func StageByID(id string) (*PipelineStage, bool) {
	for i := range PipelineStages {
		if PipelineStages[i].ID == id {
			return &PipelineStages[i], true
		}
	}
	return nil, false
}

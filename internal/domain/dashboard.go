package domain

import "time"

// StageSummary agrega os negócios abertos de um estágio do funil
type StageSummary struct {
	StageID    string  `json:"stage_id"`
	StageName  string  `json:"stage_name"`
	DealCount  int     `json:"deal_count"`
	TotalValue float64 `json:"total_value"`
}

// DashboardSummary alimenta o painel da UI com os agregados do funil
type DashboardSummary struct {
	Stages           []StageSummary `json:"stages"`
	OpenDealCount    int            `json:"open_deal_count"`
	OpenDealValue    float64        `json:"open_deal_value"`
	WeightedPipeline float64        `json:"weighted_pipeline"`
	WonThisMonth     float64        `json:"won_this_month"`
	LostThisMonth    float64        `json:"lost_this_month"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

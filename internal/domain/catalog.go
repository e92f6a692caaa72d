package domain

// ProductPerformance representa a receita acumulada e o crescimento de
// um produto do portfólio
type ProductPerformance struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"`
}

// ChannelSplit representa a participação percentual de um canal de
// aquisição. Os valores são apenas para exibição e não precisam somar
// exatamente 100.
type ChannelSplit struct {
	Channel string  `json:"channel"`
	Value   float64 `json:"value"`
}

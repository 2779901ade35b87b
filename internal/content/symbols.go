package content

import "WyckoffLab/internal/domain/models"

// Symbols lists the pairs the chart tool offers.
var Symbols = []models.SymbolInfo{
	{Symbol: "BTCUSDT", Name: "Bitcoin", Base: "BTC"},
	{Symbol: "ETHUSDT", Name: "Ethereum", Base: "ETH"},
	{Symbol: "SOLUSDT", Name: "Solana", Base: "SOL"},
	{Symbol: "BNBUSDT", Name: "BNB", Base: "BNB"},
	{Symbol: "XRPUSDT", Name: "XRP", Base: "XRP"},
	{Symbol: "ADAUSDT", Name: "Cardano", Base: "ADA"},
}

// IsValidSymbol reports whether the chart tool offers the symbol.
func IsValidSymbol(symbol string) bool {
	for _, s := range Symbols {
		if s.Symbol == symbol {
			return true
		}
	}
	return false
}

package models

// TokenDescriptor describes an ERC-20 token the wallet can hold and settle in.
// Identity is the contract address; descriptors are never mutated after the registry loads.
// swagger:model TokenDescriptor
type TokenDescriptor struct {
	// Contract address (checksummed hex)
	// example: 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48
	ContractAddress string `json:"contractAddress"`

	// Ticker symbol
	// example: USDC
	Symbol string `json:"symbol"`

	// Display name
	// example: USD Coin
	Name string `json:"name"`

	// Number of fractional digits of one whole token
	// example: 6
	Decimals uint8 `json:"decimals"`

	// Logo URL shown by the UI
	ImageURL string `json:"imageUrl"`

	// Identifier of the token at the price source
	// example: usd-coin
	PriceID string `json:"priceId,omitempty"`
}

// DefaultTokens is the built-in token registry used when no registry file is configured.
var DefaultTokens = []TokenDescriptor{
	{
		ContractAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Symbol:          "USDC",
		Name:            "USD Coin",
		Decimals:        6,
		ImageURL:        "https://assets.coingecko.com/coins/images/6319/large/usdc.png",
		PriceID:         "usd-coin",
	},
	{
		ContractAddress: "0xdAC17F958D2ee523a2206206994597C13D831ec7",
		Symbol:          "USDT",
		Name:            "Tether USD",
		Decimals:        6,
		ImageURL:        "https://assets.coingecko.com/coins/images/325/large/Tether.png",
		PriceID:         "tether",
	},
	{
		ContractAddress: "0x6B175474E89094C44Da98b954EedeAC495271d0F",
		Symbol:          "DAI",
		Name:            "Dai Stablecoin",
		Decimals:        18,
		ImageURL:        "https://assets.coingecko.com/coins/images/9956/large/Badge_Dai.png",
		PriceID:         "dai",
	},
	{
		ContractAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		Symbol:          "WETH",
		Name:            "Wrapped Ether",
		Decimals:        18,
		ImageURL:        "https://assets.coingecko.com/coins/images/2518/large/weth.png",
		PriceID:         "weth",
	},
}

package grant_bonus

// GrantBonusRequest HTTP request model
type GrantBonusRequest struct {
	Amount int64   `json:"amount"`
	Note   *string `json:"note,omitempty"` // например, "timely service bonus"
}

// GrantBonusResponse HTTP response model
type GrantBonusResponse struct {
	VehicleRegistration string `json:"vehicleRegistration"`
	CoinsGranted        int64  `json:"coinsGranted"`
	CoinBalance         int64  `json:"coinBalance"`
}

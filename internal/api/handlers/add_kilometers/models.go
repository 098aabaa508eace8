package add_kilometers

// AddKilometersRequest HTTP request model
type AddKilometersRequest struct {
	Kilometers int64 `json:"kilometers"`
}

// AddKilometersResponse HTTP response model
type AddKilometersResponse struct {
	VehicleRegistration string `json:"vehicleRegistration"`
	CoinsEarned         int64  `json:"coinsEarned"`
	CoinBalance         int64  `json:"coinBalance"`
}

package entities

// Lot is a parking facility with a bounded pool of spaces and an hourly rate.
// AvailableSpaces is mutated only through the lot registry's reserve/release
// operations and never leaves the [0, TotalSpaces] range.
type Lot struct {
	ID                 int     `json:"id"`
	Code               string  `json:"code"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	TotalSpaces        int     `json:"total_spaces"`
	AvailableSpaces    int     `json:"available_spaces"`
	ChargingFeePerHour float64 `json:"charging_fee_per_hour"`
}

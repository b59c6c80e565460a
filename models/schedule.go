package models

// DeliveryDate is one entry in an island's delivery schedule.
type DeliveryDate struct {
	Date          string `json:"date"`
	DisplayDate   string `json:"display_date"`
	OrderDeadline string `json:"order_deadline"`
}

// TaxiRoute is a priced point-to-point water taxi route. Endpoint order is
// not significant; lookups match either direction.
type TaxiRoute struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	BasePrice float64 `json:"base_price"`
	Duration  string  `json:"duration"`
}

// AvailableRide is a scheduled water taxi departure with seats for sale.
type AvailableRide struct {
	ID            string  `json:"id"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Captain       Captain `json:"captain"`
	DepartureTime string  `json:"departure_time"`
	SeatsLeft     int     `json:"seats_left"`
	Price         float64 `json:"price"`
	IsOnDemand    bool    `json:"is_on_demand,omitempty"`
}

// FerryStatus is the state ferry disruption banner shown on the home screen.
type FerryStatus struct {
	HasDisruption bool   `json:"has_disruption"`
	Message       string `json:"message"`
	Details       string `json:"details"`
}

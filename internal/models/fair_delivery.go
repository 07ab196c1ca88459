package models

type DeliveryStatus string

const (
	StatusOut    DeliveryStatus = "out"
	StatusReturn DeliveryStatus = "return"
)

// ProductItem is one product row on a fair delivery. Owned by exactly one
// FairDeliveryRecord.
type ProductItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SentQuantity     float64 `json:"sentQuantity"`
	Price            float64 `json:"price"`
	ReturnedQuantity float64 `json:"returnedQuantity"`
}

// FairDeliveryRecord is one saved fair delivery. Profit is derived: it is
// recomputed from the product and expense values at save time and never
// edited on its own.
type FairDeliveryRecord struct {
	ID             string         `json:"id"`
	FairName       string         `json:"fairName"`
	DriverName     string         `json:"driverName"`
	Products       []ProductItem  `json:"products"`
	Status         DeliveryStatus `json:"status"`
	Tax            float64        `json:"tax"`
	ExtraExpenses  float64        `json:"extraExpenses"`
	DieselExpenses float64        `json:"dieselExpenses"`
	Profit         float64        `json:"profit"`
}

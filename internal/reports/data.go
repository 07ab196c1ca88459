package reports

// Placeholder reporting dataset served until delivery history gets a real
// store; shapes match what the reports view renders.

type DeliveryCountSummary struct {
	Count   int     `json:"count"`
	Profit  float64 `json:"profit,omitempty"`
	Revenue float64 `json:"revenue,omitempty"`
}

type DailyReport struct {
	Date           string               `json:"date"`
	FairDeliveries DeliveryCountSummary `json:"fairDeliveries"`
	ShopDeliveries DeliveryCountSummary `json:"shopDeliveries"`
	TotalProfit    float64              `json:"totalProfit"`
	TotalRevenue   float64              `json:"totalRevenue"`
}

type MonthlyTotals struct {
	Deliveries int     `json:"deliveries"`
	Profit     float64 `json:"profit,omitempty"`
	Revenue    float64 `json:"revenue,omitempty"`
}

type MonthlyReport struct {
	Month        string        `json:"month"`
	FairTotal    MonthlyTotals `json:"fairTotal"`
	ShopTotal    MonthlyTotals `json:"shopTotal"`
	TotalProfit  float64       `json:"totalProfit"`
	TotalRevenue float64       `json:"totalRevenue"`
}

type TopShop struct {
	Name    string  `json:"name"`
	Owner   string  `json:"owner"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type TopFair struct {
	Name       string  `json:"name"`
	Profit     float64 `json:"profit"`
	Deliveries int     `json:"deliveries"`
}

type Summary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	FairProfits     float64 `json:"fairProfits"`
	ShopRevenue     float64 `json:"shopRevenue"`
	TotalDeliveries int     `json:"totalDeliveries"`
}

var summary = Summary{
	TotalRevenue:    580000,
	FairProfits:     350000,
	ShopRevenue:     580000,
	TotalDeliveries: 165,
}

var dailyReports = []DailyReport{
	{
		Date:           "2024-01-15",
		FairDeliveries: DeliveryCountSummary{Count: 2, Profit: 15000},
		ShopDeliveries: DeliveryCountSummary{Count: 5, Revenue: 25000},
		TotalProfit:    15000,
		TotalRevenue:   25000,
	},
	{
		Date:           "2024-01-14",
		FairDeliveries: DeliveryCountSummary{Count: 1, Profit: 8000},
		ShopDeliveries: DeliveryCountSummary{Count: 3, Revenue: 18000},
		TotalProfit:    8000,
		TotalRevenue:   18000,
	},
}

var monthlyReports = []MonthlyReport{
	{
		Month:        "January 2024",
		FairTotal:    MonthlyTotals{Deliveries: 45, Profit: 350000},
		ShopTotal:    MonthlyTotals{Deliveries: 120, Revenue: 580000},
		TotalProfit:  350000,
		TotalRevenue: 580000,
	},
	{
		Month:        "December 2023",
		FairTotal:    MonthlyTotals{Deliveries: 42, Profit: 320000},
		ShopTotal:    MonthlyTotals{Deliveries: 110, Revenue: 520000},
		TotalProfit:  320000,
		TotalRevenue: 520000,
	},
}

var topShops = []TopShop{
	{Name: "Green Valley Shop", Owner: "Mr. Silva", Revenue: 45000, Orders: 15},
	{Name: "City Mart", Owner: "Mrs. Perera", Revenue: 38000, Orders: 12},
	{Name: "Corner Store", Owner: "Mr. Fernando", Revenue: 32000, Orders: 10},
}

var topFairs = []TopFair{
	{Name: "Colombo Fair", Profit: 85000, Deliveries: 12},
	{Name: "Kandy Fair", Profit: 72000, Deliveries: 10},
	{Name: "Galle Fair", Profit: 65000, Deliveries: 8},
}

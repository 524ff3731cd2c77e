package entities

// KPIReport is the aggregate fleet snapshot rendered on the home surface.
type KPIReport struct {
	OrdersInTransit int64
	WeeklyIncidents int64
	AvgDurationMin  float64
	SLACompliance   string
	Trend           []float64
	IsRealData      bool
}

package models

// MonthlyCount is a complaint count for one calendar month.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// CategoryCount is a complaint count for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// LocationCount is a complaint count for one location.
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// AnalyticsSnapshot is a derived aggregate over the user and complaint
// collections. It is computed on demand and never persisted.
type AnalyticsSnapshot struct {
	TotalUsers           int64           `json:"totalUsers"`
	ComplaintsReceived   int64           `json:"complaintsReceived"`
	ResolvedComplaints   int64           `json:"resolvedComplaints"`
	ActiveModerators     int64           `json:"activeModerators"`
	MonthlyComplaints    []MonthlyCount  `json:"monthlyComplaints"`
	ComplaintsByCategory []CategoryCount `json:"complaintsByCategory"`
	ComplaintsByLocation []LocationCount `json:"complaintsByLocation"`
	AverageResolutionMs  float64         `json:"averageResolutionTime"`
}

package models

// ChartPoint is one labeled value of a dashboard chart series.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardStats feeds the company dashboard: counters for the summary
// widgets and chart series for the graphs.
type DashboardStats struct {
	MyProducts        int `json:"myProducts"`
	MyUsers           int `json:"myUsers"`
	OpposingCompanies int `json:"opposingCompanies"`
	MyChats           int `json:"myChats"`

	ProvinceCompanies  []ChartPoint `json:"provinceCompanies"`
	MaxProducts        []ChartPoint `json:"maxProducts"`
	ProductFavorites   []ChartPoint `json:"productFavorites"`
	MaxInteractions    []ChartPoint `json:"maxInteractions"`
	MaxClassifications []ChartPoint `json:"maxClassifications"`
}

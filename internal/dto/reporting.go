package dto

// DashboardParams defines query parameters for the dashboard report.
type DashboardParams struct {
	Year int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

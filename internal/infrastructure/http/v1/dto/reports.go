package dto

// RangeReportRequest holds the inclusive date range, formatted as YYYY-MM-DD.
type RangeReportRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

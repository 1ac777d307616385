package attendance

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	InTime       *string `json:"in_time,omitempty"`
	OutTime      *string `json:"out_time,omitempty"`
	Status       string  `json:"status"`
}

type MonthLogResponse struct {
	EmployeeID  string               `json:"employee_id"`
	Month       string               `json:"month"`
	PresentDays int                  `json:"present_days"`
	Records     []AttendanceResponse `json:"records"`
}

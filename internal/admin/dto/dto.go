package dto

// DashboardStats is the headline card row of the admin dashboard. The
// base figures are static sample data; live orders recorded during the
// session are folded in on top.
type DashboardStats struct {
	TotalRevenue  float64
	TotalOrders   int
	TotalProducts int
	ActiveUsers   int
}

// CustomerRow is one line of the user management table (sample data).
type CustomerRow struct {
	ID       string
	Name     string
	Email    string
	JoinedAt string
	Orders   int
	Active   bool
}

// LowStockAlert is one line of the low stock panel (sample data).
type LowStockAlert struct {
	ProductName string
	Remaining   int
}

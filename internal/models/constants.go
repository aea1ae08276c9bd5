package models

// Categories
const (
	CategoryUncategorized = "Uncategorized"
)

// Schedule line item labels
const (
	LabelDeposit      = "Deposit"
	LabelFinalPayment = "Final Payment"
)

// Hunt and invoice defaults
const (
	HuntStatusBooked = "booked"
	CurrencyUSD      = "USD"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

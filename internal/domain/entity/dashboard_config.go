package entity

import "github.com/shopspring/decimal"

// ConfigSchemaVersion versión actual del registro de configuración.
// Los registros guardados con una versión anterior se completan con los valores por defecto.
const ConfigSchemaVersion = 2

// Departments y Categories iniciales del catálogo.
var (
	DefaultDepartments = []string{
		"Engineering", "Sales", "Marketing", "Finance", "HR", "Design", "Operations", "Executive",
	}
	DefaultCategories = []string{
		"Cloud Infrastructure", "CRM", "Laptop", "Design Tools", "Productivity", "Security",
		"Network", "Facilities", "Server", "Fleet", "ERP",
	}
)

// DashboardConfig preferencias del espacio de trabajo. Solo Currency, MonthlyBudget,
// Categories y Departments alimentan los cálculos; el resto es presentación.
// Los ajustes checker-maker se guardan pero no se aplican a ningún flujo.
type DashboardConfig struct {
	SchemaVersion int `json:"schema_version"`

	Currency       string          `json:"currency"`
	ShowAIInsights bool            `json:"show_ai_insights"`
	ShowEventLog   bool            `json:"show_event_log"`
	SoftMode       bool            `json:"soft_mode"`
	Categories     []string        `json:"categories"`
	Departments    []string        `json:"departments"`
	MonthlyBudget  decimal.Decimal `json:"monthly_budget"`

	EnableCheckerMaker bool            `json:"enable_checker_maker"`
	CheckerThreshold   decimal.Decimal `json:"checker_threshold"`
	CheckerRole        string          `json:"checker_role"`
	CheckerActions     []string        `json:"checker_actions"`

	Language           string `json:"language"`
	EnableRTL          bool   `json:"enable_rtl"`
	PrimaryColor       string `json:"primary_color"`
	SidebarTransparent bool   `json:"sidebar_transparent"`
	DarkMode           bool   `json:"dark_mode"`

	DateFormat      string `json:"date_format"`
	TimeFormat      string `json:"time_format"`
	CustomerPrefix  string `json:"customer_prefix"`
	VendorPrefix    string `json:"vendor_prefix"`
	InvoicePrefix   string `json:"invoice_prefix"`
	ProposalPrefix  string `json:"proposal_prefix"`
	BillPrefix      string `json:"bill_prefix"`
	QuotationPrefix string `json:"quotation_prefix"`
	DisplayShipping bool   `json:"display_shipping"`
	InvoiceFooter   string `json:"invoice_footer"`

	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyCity    string `json:"company_city"`
	CompanyState   string `json:"company_state"`
	CompanyZip     string `json:"company_zip"`
	CompanyCountry string `json:"company_country"`
	CompanyPhone   string `json:"company_phone"`
	CompanyReg     string `json:"company_reg"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IPRestriction  bool   `json:"ip_restriction"`
	Timezone       string `json:"timezone"`
	TaxNumber      bool   `json:"tax_number"`

	DecimalFormat    string `json:"decimal_format"`
	CurrencyPosition string `json:"currency_position"`

	MailDriver      string `json:"mail_driver"`
	MailHost        string `json:"mail_host"`
	MailPort        string `json:"mail_port"`
	MailUsername    string `json:"mail_username"`
	MailPassword    string `json:"mail_password"`
	MailEncryption  string `json:"mail_encryption"`
	MailFromAddress string `json:"mail_from_address"`
	MailFromName    string `json:"mail_from_name"`

	PaymentGateways map[string]bool `json:"payment_gateways"`
}

// DefaultDashboardConfig devuelve un registro nuevo con todos los valores por defecto.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		SchemaVersion:  ConfigSchemaVersion,
		Currency:       CurrencyIDR,
		ShowAIInsights: true,
		ShowEventLog:   true,
		SoftMode:       true,
		Categories:     append([]string(nil), DefaultCategories...),
		Departments:    append([]string(nil), DefaultDepartments...),
		MonthlyBudget:  decimal.NewFromInt(500_000_000),

		EnableCheckerMaker: false,
		CheckerThreshold:   decimal.NewFromInt(10_000_000),
		CheckerRole:        "manager",
		CheckerActions:     []string{"create", "delete"},

		Language:           "English",
		PrimaryColor:       "#4f46e5",
		SidebarTransparent: true,

		DateFormat:      "Jan 1, 2025",
		TimeFormat:      "24 Hours",
		CustomerPrefix:  "#CUST",
		VendorPrefix:    "#VEND",
		InvoicePrefix:   "#INV",
		ProposalPrefix:  "#PROP",
		BillPrefix:      "#BILL",
		QuotationPrefix: "#QUO",
		DisplayShipping: true,
		InvoiceFooter:   "Thank you for your business. Please process payment within 30 days.",

		CompanyName:    "SubGuard Inc.",
		CompanyAddress: "123 Innovation Blvd",
		CompanyCity:    "Jakarta",
		CompanyState:   "DKI Jakarta",
		CompanyZip:     "12950",
		CompanyCountry: "Indonesia",
		CompanyPhone:   "+62 21 555 0199",
		CompanyReg:     "992348123-X",
		StartTime:      "09:00",
		EndTime:        "18:00",
		Timezone:       "Asia/Jakarta (GMT+7)",

		DecimalFormat:    "1,234.56",
		CurrencyPosition: "Pre (Rp 100)",

		MailDriver:      "smtp",
		MailHost:        "smtp.mailgun.org",
		MailPort:        "587",
		MailUsername:    "postmaster@subguard.io",
		MailEncryption:  "tls",
		MailFromAddress: "hello@subguard.io",
		MailFromName:    "SubGuard System",

		PaymentGateways: map[string]bool{
			"Bank Transfer": true,
			"Stripe":        false,
			"Paypal":        true,
			"Paystack":      false,
			"Flutterwave":   false,
			"Razorpay":      false,
			"Paytm":         false,
			"Mercado Pago":  false,
			"Mollie":        false,
			"Skrill":        false,
			"CoinGate":      false,
			"PaymentWall":   false,
		},
	}
}

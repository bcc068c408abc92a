package alerts

// Alert is a transient warning derived from the fleet snapshot. It is
// recomputed on every evaluation and never persisted; identity across
// evaluations is not meaningful.
type Alert struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	DocumentID string `json:"documentId,omitempty"`
	DriverID   string `json:"driverId,omitempty"`
}

// Severity drives UI styling, independent of priority.
const (
	SeverityDanger  = "danger"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Priority drives ordering and grouping only.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

const (
	CategoryDocument    = "documento"
	CategoryMaintenance = "mantenimiento"
	CategoryRepair      = "reparacion"
	CategoryFuel        = "combustible"
	CategoryMileage     = "kilometraje"
	CategoryLicense     = "licencia"
)

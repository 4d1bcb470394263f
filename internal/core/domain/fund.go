package domain

// Fund is a named ring-fenced pool of money scoped to a building (reserve
// fund, general fund, ...). Each fund maps to a dedicated ledger account that
// shares its name.
type Fund struct {
	FundID     string `json:"fundID"`
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	AuditFields
}

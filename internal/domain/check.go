package domain

// VulnCheck is one row of the vulnerability check table. The rows are static
// placeholder content seeded at startup; no scanning populates them.
type VulnCheck struct {
	Code       string // e.g. "V-001"
	Name       string
	Status     CheckStatus
	Result     string
	OrderIndex int
}

package models

// IngestedOrder identifies one order created during an ingestion run.
type IngestedOrder struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IngestResult summarizes one synchronous ingestion run. A skip is a
// provider response deliberately not turned into a stored order, either
// because its uuid is already present, because it could not be mapped, or
// because the insert failed.
type IngestResult struct {
	Message         string          `json:"message"`
	NewOrdersCount  int             `json:"newOrdersCount"`
	SkippedCount    int             `json:"skippedCount"`
	TotalInDatabase int64           `json:"totalInDatabase"`
	NewOrders       []IngestedOrder `json:"newOrders"`
	SkippedUUIDs    []string        `json:"skippedUuids"`
}

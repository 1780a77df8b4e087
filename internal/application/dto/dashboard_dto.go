package dto

// DashboardResponse métricas del panel de administración.
type DashboardResponse struct {
	TotalAmbulances   int            `json:"total_ambulances"`
	StorageItems      int            `json:"storage_items"`
	StorageLowStock   int            `json:"storage_low_stock"`
	CriticalShortages []ShortfallDTO `json:"critical_shortages"` // top 10, más agotados primero
}

// ActivityEntryResponse una fila de la bitácora.
type ActivityEntryResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Details    string `json:"details,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ActivityListResponse listado paginado de la bitácora.
type ActivityListResponse struct {
	Items []ActivityEntryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

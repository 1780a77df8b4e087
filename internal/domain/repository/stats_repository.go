package repository

import "context"

// StatsRepository define las consultas agregadas del panel de administración.
// Son lecturas puras; se implementan como queries SQL dedicadas.
type StatsRepository interface {
	// CountAmbulances cuenta las unidades registradas.
	CountAmbulances(ctx context.Context) (int, error)

	// CountStorageItems cuenta los ítems del almacén central.
	CountStorageItems(ctx context.Context) (int, error)

	// CountStorageLowStock cuenta los ítems del almacén con cantidad por
	// debajo del umbral dado.
	CountStorageLowStock(ctx context.Context, threshold int) (int, error)
}

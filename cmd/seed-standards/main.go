// seed-standards puebla el catálogo de estándares de dotación con la dotación
// recomendada inicial. Es idempotente: hace upsert por (categoría, nombre
// normalizado), así que puede correrse sobre una base ya poblada.
//
// Uso: go run ./cmd/seed-standards
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/infrastructure/postgres"
	"github.com/frenchys-amb/ambutrack-api/internal/seed"
	"github.com/frenchys-amb/ambutrack-api/pkg/config"
	"github.com/frenchys-amb/ambutrack-api/pkg/normalize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewStandardRepository(pool)
	now := time.Now()
	total := 0
	for _, category := range entity.Categories {
		for _, item := range seed.RecommendedInventory[category] {
			standard := &entity.Standard{
				ID:             uuid.New().String(),
				Category:       category,
				NormalizedName: normalize.Name(item.Name),
				Quantity:       item.Quantity,
				ItemType:       entity.ItemTypeForCategory(category),
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := repo.Upsert(standard); err != nil {
				fmt.Fprintf(os.Stderr, "upsert %s/%s: %v\n", category, standard.NormalizedName, err)
				os.Exit(1)
			}
			total++
		}
	}
	fmt.Printf("catálogo de estándares poblado: %d ítems\n", total)
}

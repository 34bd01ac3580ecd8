package database

import (
	"context"
	"database/sql"

	"github.com/bizzyglass/glass-crm/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]entity.GlassService, error) {
	query := `
		SELECT id, name, category, base_price_cents
		FROM services
		ORDER BY category, name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []entity.GlassService{}
	for rows.Next() {
		var s entity.GlassService
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.BasePriceCents); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

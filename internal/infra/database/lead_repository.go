package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/bizzyglass/glass-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, first_name, last_name, phone, email,
	make, model, year, body_type, vin,
	urgency, damage_description, glass_to_replace, addon_services,
	preferred_date, preferred_time, preferred_days_times,
	status, messages, created_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	messages, err := json.Marshal(lead.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	query := `
		INSERT INTO leads (
			first_name, last_name, phone, email,
			make, model, year, body_type, vin,
			urgency, damage_description, glass_to_replace, addon_services,
			preferred_date, preferred_time, preferred_days_times,
			status, messages
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.FirstName, lead.LastName, lead.Phone, lead.Email,
		lead.Make, lead.Model, lead.Year, lead.BodyType, nullString(lead.VIN),
		lead.Urgency, lead.DamageDescription, pq.Array(lead.GlassToReplace), pq.Array(lead.AddonServices),
		nullString(lead.PreferredDate), nullString(lead.PreferredTime), pq.Array(lead.PreferredDaysTimes),
		lead.Status, messages,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeads(rows)
}

// FindByPhoneSuffix matches stored phones reduced to digits against the
// given suffix. Suffix matching is deliberate: stored formats are
// inconsistent across creation paths. Stable id order so collisions
// resolve the same way every time.
func (r *LeadRepository) FindByPhoneSuffix(ctx context.Context, suffix string) ([]entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE regexp_replace(phone, '\D', '', 'g') LIKE '%' || $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, suffix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeads(rows)
}

// Save writes the whole record back, message thread included. The
// thread is the only nested structure and round-trips through the
// messages JSONB column.
func (r *LeadRepository) Save(ctx context.Context, lead *entity.Lead) error {
	messages, err := json.Marshal(lead.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	query := `
		UPDATE leads SET
			first_name = $2, last_name = $3, phone = $4, email = $5,
			make = $6, model = $7, year = $8, body_type = $9, vin = $10,
			urgency = $11, damage_description = $12,
			glass_to_replace = $13, addon_services = $14,
			preferred_date = $15, preferred_time = $16, preferred_days_times = $17,
			status = $18, messages = $19
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		lead.FirstName, lead.LastName, lead.Phone, lead.Email,
		lead.Make, lead.Model, lead.Year, lead.BodyType, nullString(lead.VIN),
		lead.Urgency, lead.DamageDescription,
		pq.Array(lead.GlassToReplace), pq.Array(lead.AddonServices),
		nullString(lead.PreferredDate), nullString(lead.PreferredTime), pq.Array(lead.PreferredDaysTimes),
		lead.Status, messages,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return err
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE leads SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var vin, preferredDate, preferredTime sql.NullString
	var messages []byte

	err := row.Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Phone, &lead.Email,
		&lead.Make, &lead.Model, &lead.Year, &lead.BodyType, &vin,
		&lead.Urgency, &lead.DamageDescription,
		pq.Array(&lead.GlassToReplace), pq.Array(&lead.AddonServices),
		&preferredDate, &preferredTime, pq.Array(&lead.PreferredDaysTimes),
		&lead.Status, &messages, &lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.VIN = vin.String
	lead.PreferredDate = preferredDate.String
	lead.PreferredTime = preferredTime.String

	lead.Messages = []entity.Message{}
	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &lead.Messages); err != nil {
			return nil, fmt.Errorf("corrupt messages column on lead %d: %w", lead.ID, err)
		}
	}

	return &lead, nil
}

func collectLeads(rows *sql.Rows) ([]entity.Lead, error) {
	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

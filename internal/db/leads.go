package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"leadsearch/internal/models"
)

// leadColumns is the standard column list for lead queries.
const leadColumns = `id, owner_id, fname, lname, phone_number, secondary_phone,
	email, city, state, crm_id, mkt_id, company_name, status, real_date`

// scanLeads scans multiple rows into a slice of Leads.
func scanLeads(rows pgx.Rows) ([]models.Lead, error) {
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.OwnerID,
			&lead.FirstName,
			&lead.LastName,
			&lead.PhoneNumber,
			&lead.SecondaryPhone,
			&lead.Email,
			&lead.City,
			&lead.State,
			&lead.CRMID,
			&lead.MarketingID,
			&lead.CompanyName,
			&lead.Status,
			&lead.RealDate,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// CountLeadsBy returns the number of leads for an owner whose field matches
// text as a case-insensitive substring. The searched column comes from the
// closed SearchField map, never from request input.
func (d *DB) CountLeadsBy(ctx context.Context, field models.SearchField, text string, ownerID int64) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE ` + field.Column() + ` ILIKE $1 AND owner_id = $2`

	var count int
	err := d.Pool.QueryRow(ctx, query, "%"+text+"%", ownerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SearchLeadsBy returns leads for an owner whose field matches text as a
// case-insensitive substring, most recent first. A negative offset disables
// slicing and returns the full ordered set.
func (d *DB) SearchLeadsBy(ctx context.Context, field models.SearchField, text string, ownerID int64, offset, limit int) ([]models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ` + field.Column() + ` ILIKE $1 AND owner_id = $2
		ORDER BY real_date DESC
	`
	args := []any{"%" + text + "%", ownerID}

	if offset >= 0 {
		query += ` OFFSET $3 LIMIT $4`
		args = append(args, offset, limit)
	}

	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanLeads(rows)
}

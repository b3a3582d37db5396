package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

const postingColumns = `id, title, description, responsibilities, required_skills,
	client_company, industry, work_location, work_arrangement, company_size,
	employment_type, experience_level, visa_support, min_salary, max_salary,
	currency, benefits, application_method, valid_until, created_at`

// SavePosting inserts a new posting and returns its generated
// identifier. Postings are never updated after creation.
func (db *DB) SavePosting(ctx context.Context, posting *types.Posting) (uuid.UUID, error) {
	responsibilitiesJSON, err := json.Marshal(posting.Responsibilities)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal responsibilities: %w", err)
	}
	requiredSkillsJSON, err := json.Marshal(posting.RequiredSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	createdAt := posting.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO postings (title, description, responsibilities, required_skills,
		        client_company, industry, work_location, work_arrangement,
		        company_size, employment_type, experience_level, visa_support,
		        min_salary, max_salary, currency, benefits, application_method,
		        valid_until, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		         $15, $16, $17, $18, $19)
		 RETURNING id`,
		posting.Title, posting.Description, responsibilitiesJSON, requiredSkillsJSON,
		posting.ClientCompany, posting.Industry, posting.WorkLocation,
		posting.WorkArrangement, posting.CompanySize, posting.EmploymentType,
		posting.ExperienceLevel, posting.VisaSupport,
		posting.Salary.Min, posting.Salary.Max, posting.Salary.Currency,
		posting.Benefits, posting.ApplicationMethod, posting.ValidUntil, createdAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save posting: %w", err)
	}
	return id, nil
}

// GetPostingByID retrieves a posting by its identifier. Returns
// ErrNotFound when no posting matches.
func (db *DB) GetPostingByID(ctx context.Context, id uuid.UUID) (*types.Posting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = $1`, id)
	posting, err := scanPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return posting, nil
}

// ListPostings retrieves all postings, newest first. Expired postings
// are included; freshness filtering is a caller concern.
func (db *DB) ListPostings(ctx context.Context) ([]types.Posting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+postingColumns+` FROM postings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	postings := make([]types.Posting, 0)
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, *posting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	return postings, nil
}

// scanPosting reads one posting row, unmarshalling the JSONB list columns.
func scanPosting(row pgx.Row) (*types.Posting, error) {
	var p types.Posting
	var responsibilitiesJSON, requiredSkillsJSON []byte

	err := row.Scan(&p.ID, &p.Title, &p.Description,
		&responsibilitiesJSON, &requiredSkillsJSON,
		&p.ClientCompany, &p.Industry, &p.WorkLocation, &p.WorkArrangement,
		&p.CompanySize, &p.EmploymentType, &p.ExperienceLevel, &p.VisaSupport,
		&p.Salary.Min, &p.Salary.Max, &p.Salary.Currency,
		&p.Benefits, &p.ApplicationMethod, &p.ValidUntil, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if responsibilitiesJSON != nil {
		_ = json.Unmarshal(responsibilitiesJSON, &p.Responsibilities)
	}
	if requiredSkillsJSON != nil {
		_ = json.Unmarshal(requiredSkillsJSON, &p.RequiredSkills)
	}
	return &p, nil
}

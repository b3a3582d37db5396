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

const profileColumns = `id, education_level, major, graduation_status, languages,
	certificates, hard_skills, soft_skills, work_experience, project_experience,
	location_preference, industry_preference, salary_expectation,
	benefits_expectation, primary_role, search_terms, created_at`

// SaveProfile inserts a new profile snapshot and returns its generated
// identifier. Profiles are never updated after creation.
func (db *DB) SaveProfile(ctx context.Context, profile *types.Profile) (uuid.UUID, error) {
	languagesJSON, err := json.Marshal(profile.Languages)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal languages: %w", err)
	}
	certificatesJSON, err := json.Marshal(profile.Certificates)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal certificates: %w", err)
	}
	hardSkillsJSON, err := json.Marshal(profile.HardSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal hard skills: %w", err)
	}
	softSkillsJSON, err := json.Marshal(profile.SoftSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal soft skills: %w", err)
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (education_level, major, graduation_status, languages,
		        certificates, hard_skills, soft_skills, work_experience,
		        project_experience, location_preference, industry_preference,
		        salary_expectation, benefits_expectation, primary_role,
		        search_terms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 RETURNING id`,
		profile.EducationLevel, profile.Major, profile.GraduationStatus,
		languagesJSON, certificatesJSON, hardSkillsJSON, softSkillsJSON,
		profile.WorkExperience, profile.ProjectExperience,
		profile.LocationPreference, profile.IndustryPreference,
		profile.SalaryExpectation, profile.BenefitsExpectation,
		profile.PrimaryRole, profile.SearchTerms, createdAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfileByID retrieves a profile by its identifier. Returns
// ErrNotFound when no profile matches.
func (db *DB) GetProfileByID(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetLatestProfile retrieves the most recently created profile. Returns
// ErrNotFound when no profiles exist.
func (db *DB) GetLatestProfile(ctx context.Context) (*types.Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC, id DESC LIMIT 1`)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest profile: %w", err)
	}
	return profile, nil
}

// ListProfiles retrieves all profiles, newest first.
func (db *DB) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]types.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// scanProfile reads one profile row, unmarshalling the JSONB list columns.
func scanProfile(row pgx.Row) (*types.Profile, error) {
	var p types.Profile
	var languagesJSON, certificatesJSON, hardSkillsJSON, softSkillsJSON []byte

	err := row.Scan(&p.ID, &p.EducationLevel, &p.Major, &p.GraduationStatus,
		&languagesJSON, &certificatesJSON, &hardSkillsJSON, &softSkillsJSON,
		&p.WorkExperience, &p.ProjectExperience, &p.LocationPreference,
		&p.IndustryPreference, &p.SalaryExpectation, &p.BenefitsExpectation,
		&p.PrimaryRole, &p.SearchTerms, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if languagesJSON != nil {
		_ = json.Unmarshal(languagesJSON, &p.Languages)
	}
	if certificatesJSON != nil {
		_ = json.Unmarshal(certificatesJSON, &p.Certificates)
	}
	if hardSkillsJSON != nil {
		_ = json.Unmarshal(hardSkillsJSON, &p.HardSkills)
	}
	if softSkillsJSON != nil {
		_ = json.Unmarshal(softSkillsJSON, &p.SoftSkills)
	}
	return &p, nil
}

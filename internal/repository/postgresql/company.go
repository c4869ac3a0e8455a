package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db database.Querier
}

func NewCompanyRepository(db database.Querier) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT code, name, description
		FROM companies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []company.Company{}
	for rows.Next() {
		var found company.Company
		if err := rows.Scan(&found.Code, &found.Name, &found.Description); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, nil
}

// GetByCode implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByCode(ctx context.Context, code string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, code).
		Scan(&found.Code, &found.Name, &found.Description)
	if err != nil {
		return company.Company{}, err
	}

	return found, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Code, newCompany.Name, newCompany.Description).
		Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		return company.Company{}, err
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, code string, name string, description string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	var updated company.Company
	err := q.QueryRow(ctx, query, name, description, code).
		Scan(&updated.Code, &updated.Name, &updated.Description)
	if err != nil {
		return company.Company{}, err
	}
	return updated, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, c.db)

	var deletedCode string
	err := q.QueryRow(ctx, `DELETE FROM companies WHERE code = $1 RETURNING code`, code).Scan(&deletedCode)
	if err != nil {
		return err
	}
	return nil
}

// ListInvoiceIDs implements company.CompanyRepository.
func (c *companyRepositoryImpl) ListInvoiceIDs(ctx context.Context, code string) ([]int, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice ids for company %s: %w", code, err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice ids: %w", err)
	}

	return ids, nil
}

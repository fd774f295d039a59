package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/boxline/boxline-backend-go/internal/domain/client"
	"github.com/boxline/boxline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, contact_person, email, phone, address, notes, is_active, created_at, updated_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &c.Address, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (name, contact_person, email, phone, address, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING ` + clientColumns

	created, err := scanClient(q.QueryRow(ctx, query, c.Name, c.ContactPerson, c.Email, c.Phone, c.Address, c.Notes))
	if err != nil {
		if strings.Contains(err.Error(), "uk_clients_name") {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.ActiveOnly {
		where = append(where, "is_active = true")
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR contact_person ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM clients WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+clientColumns+` FROM clients WHERE %s ORDER BY name LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}

func (r *clientRepository) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.ContactPerson != nil {
		addSet("contact_person", *req.ContactPerson)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`UPDATE clients SET %s WHERE id = $1 RETURNING `+clientColumns, strings.Join(setParts, ", "))

	c, err := scanClient(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		if strings.Contains(err.Error(), "uk_clients_name") {
			return client.Client{}, client.ErrClientNameExists
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE clients SET is_active = false, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to deactivate client: %w", err)
	}

	return nil
}

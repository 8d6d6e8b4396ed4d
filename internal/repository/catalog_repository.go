package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestar-ia/reconcile-service/internal/domain"
	"github.com/gestar-ia/reconcile-service/internal/reconcile"
)

// CatalogRepository loads master-data snapshots. This is the
// catalog-loading layer; the reconciliation engine itself never touches
// the database.
type CatalogRepository interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
	LoadAssociationTable(ctx context.Context) (domain.AssociationTable, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository builds the repository.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

// LoadSnapshot reads every master catalog in one pass. Catalog integrity
// is the database's concern; rows are taken as-is.
func (r *catalogRepository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if r.pool == nil {
		return nil, errors.New("no postgres pool configured")
	}

	snapshot := &domain.Snapshot{}

	rows, err := r.pool.Query(ctx, `SELECT id, nombre FROM plantas ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p domain.Plant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Plants = append(snapshot.Plants, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre FROM divisiones ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var d domain.Division
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Divisions = append(snapshot.Divisions, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre, division_id FROM areas ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var a domain.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.DivisionID); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Areas = append(snapshot.Areas, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Categories = append(snapshot.Categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre, categoria_id FROM subcategorias ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Subcategories = append(snapshot.Subcategories, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre, nivel FROM prioridades ORDER BY nivel`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p domain.Priority
		if err := rows.Scan(&p.ID, &p.Name, &p.Level); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Priorities = append(snapshot.Priorities, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, nombre FROM estados ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.States = append(snapshot.States, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT id, username, email, role, active FROM usuarios WHERE active = TRUE ORDER BY username`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.Active); err != nil {
			rows.Close()
			return nil, err
		}
		snapshot.Users = append(snapshot.Users, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// LoadAssociationTable reads the user to area/division association,
// preferring the division set directly on the user over the one implied
// by the user's area.
func (r *catalogRepository) LoadAssociationTable(ctx context.Context) (domain.AssociationTable, error) {
	if r.pool == nil {
		return nil, errors.New("no postgres pool configured")
	}

	const query = `
        SELECT
            u.username,
            COALESCE(a.nombre, ''),
            COALESCE(d_user.nombre, d_area.nombre, '')
        FROM usuarios u
        LEFT JOIN areas a ON u.area_id = a.id
        LEFT JOIN divisiones d_user ON u.division_id = d_user.id
        LEFT JOIN divisiones d_area ON a.division_id = d_area.id
        WHERE u.active = TRUE`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := domain.AssociationTable{}
	for rows.Next() {
		var username, areaName, divisionName string
		if err := rows.Scan(&username, &areaName, &divisionName); err != nil {
			return nil, err
		}
		if username == "" {
			continue
		}
		table[reconcile.Normalize(username)] = domain.AreaDivisionNames{
			Area:     areaName,
			Division: divisionName,
		}
	}
	return table, rows.Err()
}

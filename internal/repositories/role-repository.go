package repositories

import (
	"context"
	"fmt"

	"rental-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	roleTable  = "roles"
	roleFields = "role_id, role_name, role_description, permissions"
)

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, limit, offset uint64) ([]entities.Role, uint64, error)
	FindRole(ctx context.Context, id uint64) (*entities.Role, error)
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
}

type roleRepository struct {
	storage *pgxpool.Pool
}

func NewRoleRepository(storage *pgxpool.Pool) RoleRepositoryInterface {
	return &roleRepository{storage: storage}
}

func (r *roleRepository) GetRoles(ctx context.Context, limit, offset uint64) ([]entities.Role, uint64, error) {
	var total uint64
	countQuery, countArgs, err := psql.Select("COUNT(*)").From(roleTable).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Role{}, 0, nil
	}

	query, args, err := psql.Select(roleFields).From(roleTable).
		OrderBy("role_id").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var e entities.Role
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Permissions); err != nil {
			return nil, 0, err
		}
		roles = append(roles, e)
	}
	return roles, total, rows.Err()
}

func (r *roleRepository) FindRole(ctx context.Context, id uint64) (*entities.Role, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE role_id = $1", roleFields, roleTable)
	var e entities.Role
	err := r.storage.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Description, &e.Permissions)
	if err != nil {
		return nil, translateDBError(err)
	}
	return &e, nil
}

func (r *roleRepository) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (role_name, role_description, permissions) VALUES ($1, $2, $3) RETURNING %s",
		roleTable, roleFields)

	var e entities.Role
	err := r.storage.QueryRow(ctx, query, role.Name, role.Description, role.Permissions).
		Scan(&e.ID, &e.Name, &e.Description, &e.Permissions)
	if err != nil {
		return nil, translateDBError(err)
	}
	return &e, nil
}

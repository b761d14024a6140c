package cafe

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/dbmetrics"
	"github.com/GCN-Platform/GCN-BookingService/pkg/psqlbuilder"
)

// cafeColumns колонки таблицы cafes; вместимость хранится по одной
// integer-колонке на тип ресурса
var cafeColumns = []string{
	"id",
	"slug",
	"name",
	"owner_user_id",
	"ps5_capacity",
	"xbox_capacity",
	"pc_capacity",
	"vr_capacity",
	"billiards_capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с кафе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кафе
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Resolve разрешает полиморфную ссылку на кафе: числовая строка трактуется
// как первичный идентификатор, любая другая - как slug. Единственная точка
// разбора ссылки; дальше по коду ходит только числовой ID.
func (r *Repository) Resolve(ctx context.Context, ref string) (*domain.Cafe, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrInvalidRef
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil && id > 0 {
		return r.GetByID(ctx, id)
	}

	return r.GetBySlug(ctx, ref)
}

// GetByID получает кафе по первичному идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cafe, error) {
	return r.getByPredicate(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetBySlug получает кафе по человекочитаемому slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Cafe, error) {
	return r.getByPredicate(ctx, "GetBySlug", squirrel.Eq{"slug": slug})
}

func (r *Repository) getByPredicate(ctx context.Context, op string, pred squirrel.Eq) (*domain.Cafe, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(cafeColumns...).
		From("cafes").
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		cafe               domain.Cafe
		ps5, xbox, pc      int
		vr, billiards      int
		createdAt, updated sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cafe.ID,
		&cafe.Slug,
		&cafe.Name,
		&cafe.OwnerUserID,
		&ps5,
		&xbox,
		&pc,
		&vr,
		&billiards,
		&createdAt,
		&updated,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCafeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan cafe: %v", ErrScanRow, op, err)
	}

	cafe.Capacities = map[domain.ResourceType]int{
		domain.ResourcePS5:       ps5,
		domain.ResourceXbox:      xbox,
		domain.ResourcePC:        pc,
		domain.ResourceVR:        vr,
		domain.ResourceBilliards: billiards,
	}
	cafe.CreatedAt = createdAt.Time
	cafe.UpdatedAt = updated.Time

	return &cafe, nil
}

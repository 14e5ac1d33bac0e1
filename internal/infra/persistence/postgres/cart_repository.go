package postgres

import (
	"context"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Create persists a new cart line. The unique (user_id, product_id) index
// turns a duplicate insert into ErrDuplicateCartLine.
func (repo *cartRepository) Create(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCartLine
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	line.ID = lineM.ID
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// FindLine retrieves the line for a (user, product) pair.
func (repo *cartRepository) FindLine(ctx context.Context, userID, productID uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&lineM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&lineM), nil
}

// FindAvailableLines retrieves the user's cart lines whose product is
// currently available, products preloaded.
func (repo *cartRepository) FindAvailableLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var models []*model.CartLineModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Joins("JOIN products ON products.id = cart_lines.product_id AND products.available = ?", true).
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available cart lines")
	}

	return toCartLineDomainList(models), nil
}

// FindLines retrieves all of the user's cart lines with products preloaded.
func (repo *cartRepository) FindLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var models []*model.CartLineModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines")
	}

	return toCartLineDomainList(models), nil
}

// UpdateQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", lineID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Delete removes a single cart line.
func (repo *cartRepository) Delete(ctx context.Context, lineID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", lineID).
		Delete(&model.CartLineModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLines removes the given cart lines.
func (repo *cartRepository) DeleteLines(ctx context.Context, lineIDs []uuid.UUID) error {
	if len(lineIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("id IN ?", lineIDs).
		Delete(&model.CartLineModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart lines")
	}

	return nil
}

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartLineDomainList(models []*model.CartLineModel) []*entity.CartLine {
	lines := make([]*entity.CartLine, 0, len(models))
	for _, lineM := range models {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}

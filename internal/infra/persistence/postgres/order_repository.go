package postgres

import (
	"context"
	"time"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
// It persists the whole order aggregate: order, lines, address snapshot and
// the transaction link.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order in its initial status.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser returns one page of the user's orders and the total count,
// newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, skip, take int) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count user orders")
	}

	var models []*model.OrderModel
	err := tx.
		Order("created_at DESC").
		Offset(skip).
		Limit(take).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list user orders")
	}

	return toOrderDomainList(models), total, nil
}

// FindByStatuses returns one page of orders across all users, restricted to
// the given statuses.
func (repo *orderRepository) FindByStatuses(ctx context.Context, statuses []entity.OrderStatus, skip, take int) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("status IN ?", statusStrings(statuses))

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders by status")
	}

	var models []*model.OrderModel
	err := tx.
		Order("created_at ASC").
		Offset(skip).
		Limit(take).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders by status")
	}

	return toOrderDomainList(models), total, nil
}

// UpdateStatusIfCurrent transitions the status only when the stored status
// still equals from. The WHERE clause carries the precondition, so the check
// and the write are one atomic statement.
func (repo *orderRepository) UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the order row.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}

	return nil
}

// CreateLines persists the order's line items.
func (repo *orderRepository) CreateLines(ctx context.Context, lines []*entity.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	models := make([]*model.OrderLineModel, 0, len(lines))
	for _, line := range lines {
		models = append(models, fromOrderLineDomain(line))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order lines")
	}

	for i, lineM := range models {
		lines[i].ID = lineM.ID
		lines[i].OrderID = lineM.OrderID
		lines[i].CreatedAt = lineM.CreatedAt
	}

	return nil
}

// FindLines retrieves the order's lines with products preloaded.
func (repo *orderRepository) FindLines(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderLine, error) {
	var models []*model.OrderLineModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order lines")
	}

	lines := make([]*entity.OrderLine, 0, len(models))
	for _, lineM := range models {
		lines = append(lines, toOrderLineDomain(lineM))
	}

	return lines, nil
}

// DeleteLines removes all lines of an order.
func (repo *orderRepository) DeleteLines(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderLineModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	return nil
}

// CreateAddress persists the order's address snapshot.
func (repo *orderRepository) CreateAddress(ctx context.Context, address *entity.OrderAddress) error {
	addressM := &model.OrderAddressModel{
		OrderID:   address.OrderID,
		AddressID: address.AddressID,
		Address:   address.Address,
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindAddress retrieves the order's address snapshot.
func (repo *orderRepository) FindAddress(ctx context.Context, orderID uuid.UUID) (*entity.OrderAddress, error) {
	var addressM model.OrderAddressModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find order address")
	}

	return &entity.OrderAddress{
		ID:        addressM.ID,
		OrderID:   addressM.OrderID,
		AddressID: addressM.AddressID,
		Address:   addressM.Address,
		CreatedAt: addressM.CreatedAt,
	}, nil
}

// DeleteAddress removes the order's address snapshot.
func (repo *orderRepository) DeleteAddress(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderAddressModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order address")
	}

	return nil
}

// CreateLink persists the 1:1 order-transaction join.
func (repo *orderRepository) CreateLink(ctx context.Context, link *entity.OrderTransaction) error {
	linkM := &model.OrderTransactionModel{
		OrderID:       link.OrderID,
		TransactionID: link.TransactionID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order transaction link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindLinkByTransaction resolves the join from a transaction ID.
func (repo *orderRepository) FindLinkByTransaction(ctx context.Context, transactionID uuid.UUID) (*entity.OrderTransaction, error) {
	return repo.findLink(ctx, "transaction_id = ?", transactionID)
}

// FindLinkByOrder resolves the join from an order ID.
func (repo *orderRepository) FindLinkByOrder(ctx context.Context, orderID uuid.UUID) (*entity.OrderTransaction, error) {
	return repo.findLink(ctx, "order_id = ?", orderID)
}

func (repo *orderRepository) findLink(ctx context.Context, condition string, id uuid.UUID) (*entity.OrderTransaction, error) {
	var linkM model.OrderTransactionModel
	err := repo.db.WithContext(ctx).
		Where(condition, id).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find order transaction link")
	}

	return &entity.OrderTransaction{
		ID:            linkM.ID,
		OrderID:       linkM.OrderID,
		TransactionID: linkM.TransactionID,
		CreatedAt:     linkM.CreatedAt,
	}, nil
}

// DeleteLink removes the join for an order.
func (repo *orderRepository) DeleteLink(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderTransactionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order transaction link")
	}

	return nil
}

// FindSellerLines returns one page of order lines for products owned by the
// seller, orders and products preloaded.
func (repo *orderRepository) FindSellerLines(ctx context.Context, query repository.SellerOrderQuery) ([]*entity.OrderLine, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderLineModel{}).
		Joins("JOIN products ON products.id = order_lines.product_id").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("products.seller_id = ?", query.SellerID)
	tx = applyStatusFilters(tx, "orders.status", query)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count seller order lines")
	}

	var models []*model.OrderLineModel
	err := tx.
		Preload("Product").
		Preload("Order").
		Order("order_lines.created_at DESC").
		Offset(query.Skip).
		Limit(query.Take).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list seller order lines")
	}

	lines := make([]*entity.OrderLine, 0, len(models))
	for _, lineM := range models {
		lines = append(lines, toOrderLineDomain(lineM))
	}

	return lines, total, nil
}

func applyStatusFilters(tx *gorm.DB, column string, query repository.SellerOrderQuery) *gorm.DB {
	if len(query.Include) > 0 {
		tx = tx.Where(column+" IN ?", statusStrings(query.Include))
	}
	if len(query.Exclude) > 0 {
		tx = tx.Where(column+" NOT IN ?", statusStrings(query.Exclude))
	}

	return tx
}

func statusStrings(statuses []entity.OrderStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.String())
	}

	return out
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		OrderNo:     data.OrderNo,
		UserID:      data.UserID,
		TotalAmount: data.TotalAmount,
		Description: data.Description,
		Status:      entity.OrderStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOrderDomainList(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		OrderNo:     data.OrderNo,
		UserID:      data.UserID,
		TotalAmount: data.TotalAmount,
		Description: data.Description,
		Status:      data.Status.String(),
	}
}

func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	if data == nil {
		return nil
	}

	return &entity.OrderLine{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Amount:    data.Amount,
		Product:   toProductDomain(data.Product),
		Order:     toOrderDomain(data.Order),
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	if data == nil {
		return nil
	}

	return &model.OrderLineModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Amount:    data.Amount,
	}
}

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

// transactionRepository implements the domain.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists a new transaction in status Pending. A colliding reference
// surfaces as ErrDuplicateReference so the caller can regenerate.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// FindByID retrieves a transaction by its unique ID.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionM model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&transactionM), nil
}

// FindByRef retrieves a transaction by its gateway reference.
func (repo *transactionRepository) FindByRef(ctx context.Context, ref string) (*entity.Transaction, error) {
	var transactionM model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("ref = ?", ref).
		First(&transactionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by reference")
	}

	return toTransactionDomain(&transactionM), nil
}

// CompleteIfPending marks the transaction Completed only when it is still
// Pending. The WHERE clause carries the precondition, making the transition
// a single atomic statement; a replay updates zero rows.
func (repo *transactionRepository) CompleteIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status = ?", id, string(entity.TransactionPending)).
		Updates(map[string]any{
			"status":     string(entity.TransactionCompleted),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete transaction")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the transaction row.
func (repo *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete transaction")
	}

	return nil
}

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		Ref:       data.Ref,
		Amount:    data.Amount,
		Status:    entity.TransactionStatus(data.Status),
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:     data.ID,
		Ref:    data.Ref,
		Amount: data.Amount,
		Status: string(data.Status),
		UserID: data.UserID,
	}
}

package postgres

import (
	"context"

	"farha/internal/domain/entity"
	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/repository"
	"farha/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the domain.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// Create persists a new owner account. The identity-document columns are
// non-nullable, so a missing document surfaces here as a constraint error.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	row := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOwnerAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOwnerDocumentsMissing.WrapMessage("identity document images are required")
		}

		return domainerrors.NewPersistenceError(err, "failed to create owner")
	}

	owner.CreatedAt = row.CreatedAt
	owner.UpdatedAt = row.UpdatedAt

	return nil
}

// FindByID retrieves a single owner account.
func (repo *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	var row model.OwnerModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return toOwnerDomain(&row), nil
}

// otpRepository implements the domain.OTPRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Create persists a freshly generated code row.
func (repo *otpRepository) Create(ctx context.Context, otp *entity.UserOTP) error {
	row := &model.UserOTPModel{
		AccountID: otp.AccountID,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to create one-time code")
	}

	otp.ID = row.ID
	otp.CreatedAt = row.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		IDFrontImage: data.IDFrontImage,
		IDBackImage:  data.IDBackImage,
		Status:       entity.OwnerAccountStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel for persistence.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		IDFrontImage: data.IDFrontImage,
		IDBackImage:  data.IDBackImage,
		Status:       data.Status.String(),
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/public-forge/go-gorm-unit-of-work/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	serviceError "github.com/fugaso-go/slot-core/internal/error"
	"github.com/fugaso-go/slot-core/internal/interfaces/mocks"
	"github.com/fugaso-go/slot-core/internal/models"
)

func TestGetById_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	userID := uint(1)
	expectedUser := &models.User{Model: gorm.Model{ID: userID}}

	// Expectations
	mockUserRepo.EXPECT().GetByID(ctx, userID).Return(expectedUser, nil)

	// Instantiate the service
	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.GetByID(ctx, userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestGetById_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	userID := uint(1)
	expectedErr := errors.New("user not found")

	// Expectations
	mockUserRepo.EXPECT().GetByID(ctx, userID).Return(nil, expectedErr)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.GetByID(ctx, userID)

	// Assert
	assert.Nil(t, user)
	assert.Equal(t, expectedErr, err)
}

func TestGetByExternalId_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	externalID := uuid.New()
	expectedUser := &models.User{Model: gorm.Model{ID: 1}, ExternalID: &externalID}

	mockUserRepo.EXPECT().GetByExternalID(ctx, &externalID).Return(expectedUser, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.GetByExternalID(ctx, &externalID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestGetByExternalId_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	externalID := uuid.New()

	mockUserRepo.EXPECT().GetByExternalID(ctx, &externalID).Return(nil, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.GetByExternalID(ctx, &externalID)

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, serviceError.ErrUserNotFound)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	password := "secret-pass"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	expectedUser := &models.User{Login: "player1", Password: string(hash)}

	mockUserRepo.EXPECT().GetByLogin(ctx, "player1").Return(expectedUser, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.Login(ctx, "player1", password)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()

	mockUserRepo.EXPECT().GetByLogin(ctx, "ghost").Return(nil, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.Login(ctx, "ghost", "whatever")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, serviceError.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	storedUser := &models.User{Login: "player1", Password: string(hash)}

	mockUserRepo.EXPECT().GetByLogin(ctx, "player1").Return(storedUser, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.Login(ctx, "player1", "wrong-pass")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, serviceError.ErrInvalidPass)
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Commit(gomock.Any()).Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	created := &models.User{Login: "player1"}
	mockUserRepo.EXPECT().GetByLogin(ctx, "player1").Return(nil, nil)
	mockUserRepo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.Register(ctx, "player1", "secret-pass")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Rollback().Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	mockUserRepo.EXPECT().GetByLogin(ctx, "player1").Return(&models.User{Login: "player1"}, nil)

	service := NewUserService(mockUserRepo)

	// Act
	user, err := service.Register(ctx, "player1", "secret-pass")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, serviceError.ErrUserExists)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Commit(gomock.Any()).Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	externalID := uuid.New()
	amount := decimal.NewFromInt(100)
	expectedBalance := decimal.NewFromInt(150)
	user := &models.User{Model: gorm.Model{ID: 1}, ExternalID: &externalID, Balance: decimal.NewFromInt(50)}

	mockUserRepo.EXPECT().GetByExternalID(ctx, &externalID).Return(user, nil)
	mockUserRepo.EXPECT().Deposit(ctx, uint(1), amount).Return(&expectedBalance, nil)

	service := NewUserService(mockUserRepo)

	// Act
	balance, err := service.Deposit(ctx, &externalID, amount)

	// Assert
	assert.NoError(t, err)
	assert.True(t, expectedBalance.Equal(*balance))
}

func TestDeposit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Rollback().Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	externalID := uuid.New()

	service := NewUserService(mockUserRepo)

	// Act
	balance, err := service.Deposit(ctx, &externalID, decimal.Zero)

	// Assert
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, serviceError.ErrInvalidAmount)
}

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Commit(gomock.Any()).Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	externalID := uuid.New()
	amount := decimal.NewFromInt(40)
	expectedBalance := decimal.NewFromInt(60)
	user := &models.User{Model: gorm.Model{ID: 1}, ExternalID: &externalID, Balance: decimal.NewFromInt(100)}

	mockUserRepo.EXPECT().GetByExternalID(ctx, &externalID).Return(user, nil)
	mockUserRepo.EXPECT().Withdraw(ctx, uint(1), amount).Return(&expectedBalance, nil)

	service := NewUserService(mockUserRepo)

	// Act
	balance, err := service.Withdraw(ctx, &externalID, amount)

	// Assert
	assert.NoError(t, err)
	assert.True(t, expectedBalance.Equal(*balance))
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	mockUserRepo := mocks.NewMockIUserRepository(ctrl)
	mockTransactionContext := postgres.NewMockITransactionContext(ctrl)
	mockTransactionContext.EXPECT().Begin().Return(uuid.New(), nil)
	mockTransactionContext.EXPECT().Rollback().Return(nil)
	ctx := context.WithValue(context.Background(), postgres.TransactionContextKey, mockTransactionContext)

	externalID := uuid.New()
	user := &models.User{Model: gorm.Model{ID: 1}, ExternalID: &externalID, Balance: decimal.NewFromInt(10)}

	mockUserRepo.EXPECT().GetByExternalID(ctx, &externalID).Return(user, nil)

	service := NewUserService(mockUserRepo)

	// Act
	balance, err := service.Withdraw(ctx, &externalID, decimal.NewFromInt(40))

	// Assert
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, serviceError.ErrInsufficientFunds)
}

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelapp/internal/database"
	"travelapp/internal/domain"
)

func setupPaymentRepo(t *testing.T) *PaymentRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_repo_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, db.AutoMigrate(&domain.Payment{}))
	return NewPaymentRepository(db)
}

func TestCreate_DuplicateReference(t *testing.T) {
	repo := setupPaymentRepo(t)
	ctx := context.Background()

	first := &domain.Payment{BookingReference: "BK-1", Amount: 100, TransactionID: "BK-1", Status: domain.PaymentPending}
	require.NoError(t, repo.Create(ctx, first))
	require.NotZero(t, first.ID)

	second := &domain.Payment{BookingReference: "BK-1", Amount: 100, TransactionID: "BK-1", Status: domain.PaymentPending}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateReference)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestResolveIfPending_Transition(t *testing.T) {
	repo := setupPaymentRepo(t)
	ctx := context.Background()

	p := &domain.Payment{BookingReference: "BK-2", Amount: 50, TransactionID: "BK-2", Status: domain.PaymentPending}
	require.NoError(t, repo.Create(ctx, p))
	createdUpdatedAt := p.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	changed, err := repo.ResolveIfPending(ctx, p.ID, domain.PaymentCompleted)
	require.NoError(t, err)
	assert.True(t, changed)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, stored.Status)
	assert.True(t, stored.UpdatedAt.After(createdUpdatedAt), "updated_at must advance on resolution")
}

func TestResolveIfPending_TerminalStateIsKept(t *testing.T) {
	repo := setupPaymentRepo(t)
	ctx := context.Background()

	p := &domain.Payment{BookingReference: "BK-3", Amount: 50, TransactionID: "BK-3", Status: domain.PaymentPending}
	require.NoError(t, repo.Create(ctx, p))

	changed, err := repo.ResolveIfPending(ctx, p.ID, domain.PaymentFailed)
	require.NoError(t, err)
	require.True(t, changed)

	// A second resolution must not flip the terminal state.
	changed, err = repo.ResolveIfPending(ctx, p.ID, domain.PaymentCompleted)
	require.NoError(t, err)
	assert.False(t, changed)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, stored.Status)
}

func TestResolveIfPending_UnknownID(t *testing.T) {
	repo := setupPaymentRepo(t)

	_, err := repo.ResolveIfPending(context.Background(), 9999, domain.PaymentCompleted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByReference(t *testing.T) {
	repo := setupPaymentRepo(t)
	ctx := context.Background()

	p := &domain.Payment{BookingReference: "BK-4", Amount: 75, TransactionID: "BK-4", Status: domain.PaymentPending}
	require.NoError(t, repo.Create(ctx, p))

	stored, err := repo.GetByReference(ctx, "BK-4")
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ID)

	_, err = repo.GetByReference(ctx, "BK-missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

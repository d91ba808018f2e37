package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

func seedOrderForComplaint(t *testing.T, db *gorm.DB) (*models.Order, *models.ConsumerStaff, *models.Supplier) {
	t.Helper()
	supplier := seedSupplier(t, db)
	consumer := seedConsumer(t, db)
	staff := seedConsumerStaff(t, db, consumer.ID, "buyer@example.test")
	product := seedProduct(t, db, supplier.ID, 2.00, 100)
	order, err := CreateOrder(db, OrderInput{
		SupplierID:      supplier.ID,
		ConsumerID:      consumer.ID,
		ConsumerStaffID: staff.ID,
		Items:           []OrderLine{{ProductID: product.ID, Quantity: 2}},
	}, KeepStock)
	require.NoError(t, err)
	return order, staff, supplier
}

func TestCreateComplaint_InitialLog(t *testing.T) {
	db := newTestDB(t)
	order, staff, _ := seedOrderForComplaint(t, db)

	complaint, err := CreateComplaint(db, ComplaintInput{
		OrderID:         order.ID,
		ConsumerStaffID: staff.ID,
		Title:           "Damaged crates",
		Description:     "Two crates arrived crushed",
	}, staff.UserID)
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Equal(t, models.PriorityMedium, complaint.Priority)

	got, err := GetComplaint(db, complaint.ID)
	require.NoError(t, err)
	require.Len(t, got.Logs, 1)
	assert.Equal(t, "Created", got.Logs[0].Action)
	assert.Equal(t, staff.UserID, got.Logs[0].UserID)
}

func TestCreateComplaint_MissingOrder(t *testing.T) {
	db := newTestDB(t)
	_, staff, _ := seedOrderForComplaint(t, db)

	_, err := CreateComplaint(db, ComplaintInput{
		OrderID:         999,
		ConsumerStaffID: staff.ID,
		Title:           "x",
	}, staff.UserID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateComplaint_ResolveStampsAndLogs(t *testing.T) {
	db := newTestDB(t)
	order, staff, _ := seedOrderForComplaint(t, db)
	complaint, err := CreateComplaint(db, ComplaintInput{
		OrderID:         order.ID,
		ConsumerStaffID: staff.ID,
		Title:           "Late delivery",
	}, staff.UserID)
	require.NoError(t, err)

	status := models.ComplaintResolved
	updated, err := UpdateComplaint(db, complaint.ID, ComplaintPatch{Status: &status}, staff.UserID)
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	require.Len(t, updated.Logs, 2)
	// oldest first
	assert.Equal(t, "Created", updated.Logs[0].Action)
	assert.Equal(t, "Resolved", updated.Logs[1].Action)
}

// One update writes exactly one log row; the label follows the
// precedence Assigned > Resolved/Escalated > Updated.
func TestUpdateComplaint_ActionLabelPrecedence(t *testing.T) {
	db := newTestDB(t)
	order, staff, supplier := seedOrderForComplaint(t, db)
	resolver := seedSupplierStaff(t, db, supplier.ID, "resolver@example.test")

	newComplaint := func(t *testing.T) *models.Complaint {
		complaint, err := CreateComplaint(db, ComplaintInput{
			OrderID:         order.ID,
			ConsumerStaffID: staff.ID,
			Title:           "Quality issue",
		}, staff.UserID)
		require.NoError(t, err)
		return complaint
	}

	t.Run("escalation alone", func(t *testing.T) {
		complaint := newComplaint(t)
		status := models.ComplaintEscalated
		updated, err := UpdateComplaint(db, complaint.ID, ComplaintPatch{Status: &status}, staff.UserID)
		require.NoError(t, err)
		require.Len(t, updated.Logs, 2)
		assert.Equal(t, "Escalated", updated.Logs[1].Action)
	})

	t.Run("assignment wins over escalation", func(t *testing.T) {
		complaint := newComplaint(t)
		status := models.ComplaintEscalated
		updated, err := UpdateComplaint(db, complaint.ID, ComplaintPatch{
			Status:          &status,
			SupplierStaffID: &resolver.ID,
		}, staff.UserID)
		require.NoError(t, err)
		require.Len(t, updated.Logs, 2)
		assert.Equal(t, "Assigned", updated.Logs[1].Action)
		assert.Equal(t, models.ComplaintEscalated, updated.Status)
		require.NotNil(t, updated.SupplierStaffID)
		assert.Equal(t, resolver.ID, *updated.SupplierStaffID)
	})

	t.Run("priority-only change logs a generic update", func(t *testing.T) {
		complaint := newComplaint(t)
		priority := models.PriorityCritical
		updated, err := UpdateComplaint(db, complaint.ID, ComplaintPatch{Priority: &priority}, staff.UserID)
		require.NoError(t, err)
		require.Len(t, updated.Logs, 2)
		assert.Equal(t, "Updated", updated.Logs[1].Action)
		assert.Equal(t, models.PriorityCritical, updated.Priority)
	})
}

func TestUpdateComplaint_UnknownResolver(t *testing.T) {
	db := newTestDB(t)
	order, staff, _ := seedOrderForComplaint(t, db)
	complaint, err := CreateComplaint(db, ComplaintInput{
		OrderID:         order.ID,
		ConsumerStaffID: staff.ID,
		Title:           "x",
	}, staff.UserID)
	require.NoError(t, err)

	missing := uint(999)
	_, err = UpdateComplaint(db, complaint.ID, ComplaintPatch{SupplierStaffID: &missing}, staff.UserID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestListComplaints_FilterBySupplier(t *testing.T) {
	db := newTestDB(t)
	order, staff, supplier := seedOrderForComplaint(t, db)
	_, err := CreateComplaint(db, ComplaintInput{
		OrderID:         order.ID,
		ConsumerStaffID: staff.ID,
		Title:           "x",
	}, staff.UserID)
	require.NoError(t, err)

	complaints, err := ListComplaints(db, ComplaintFilter{SupplierID: &supplier.ID}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, complaints, 1)

	other := uint(999)
	complaints, err = ListComplaints(db, ComplaintFilter{SupplierID: &other}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, complaints)
}

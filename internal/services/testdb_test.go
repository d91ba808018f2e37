package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketplace/internal/config"
	"marketplace/internal/models"
)

// newTestDB opens a private in-memory sqlite database with the full
// schema migrated. cache=shared keeps it alive across pooled
// connections for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedSupplier(t *testing.T, db *gorm.DB) *models.Supplier {
	t.Helper()
	supplier, err := CreateSupplier(db, SupplierInput{
		CompanyName: "Fresh Farms Ltd",
		Address:     "12 Market Rd",
		Phone:       "0700000001",
		Email:       "sales@freshfarms.test",
	})
	require.NoError(t, err)
	return supplier
}

func seedConsumer(t *testing.T, db *gorm.DB) *models.Consumer {
	t.Helper()
	consumer, err := CreateConsumer(db, ConsumerInput{
		CompanyName: "Harbor Hotel",
		Address:     "1 Quay St",
		Phone:       "0700000002",
		Email:       "kitchen@harborhotel.test",
		Type:        models.ConsumerHotel,
	})
	require.NoError(t, err)
	return consumer
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := Register(db, RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "s3cret-pw",
		Phone:    "0711111111",
	})
	require.NoError(t, err)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, supplierID uint, price float64, stock int) *models.Product {
	t.Helper()
	product, err := CreateProduct(db, ProductInput{
		SupplierID: supplierID,
		Name:       fmt.Sprintf("Tomatoes %.2f", price),
		Price:      price,
		Unit:       "kg",
		Stock:      stock,
	})
	require.NoError(t, err)
	return product
}

// seedConsumerStaff registers a fresh user and joins them to the consumer.
func seedConsumerStaff(t *testing.T, db *gorm.DB, consumerID uint, email string) *models.ConsumerStaff {
	t.Helper()
	user := seedUser(t, db, email)
	staff, err := AddConsumerStaff(db, consumerID, user.ID, models.ConsumerRoleStaff)
	require.NoError(t, err)
	return staff
}

// seedSupplierStaff registers a fresh user and joins them to the supplier.
func seedSupplierStaff(t *testing.T, db *gorm.DB, supplierID uint, email string) *models.SupplierStaff {
	t.Helper()
	user := seedUser(t, db, email)
	staff, err := AddSupplierStaff(db, supplierID, user.ID, models.SupplierRoleSales)
	require.NoError(t, err)
	return staff
}

// seedApprovedLink creates and approves a link between the pair.
func seedApprovedLink(t *testing.T, db *gorm.DB, supplierID, consumerID uint) *models.Link {
	t.Helper()
	link, err := CreateLink(db, supplierID, consumerID)
	require.NoError(t, err)
	link, err = UpdateLinkStatus(db, link.ID, models.LinkApproved)
	require.NoError(t, err)
	return link
}

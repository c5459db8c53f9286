package integration

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"libcatalog/internal/domain/wishlist"
	"libcatalog/internal/infrastructure/persistence/mysql"
)

const defaultTestDSN = "catalog:catalog123@tcp(localhost:3306)/catalog?charset=utf8mb4&parseTime=true&loc=UTC"

// openTestDB connects straight to the catalog database for seeding wishlist
// rows, which no endpoint exposes. Skips when the database is unreachable.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CATALOG_TEST_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("catalog database not reachable: %v", err)
	}
	return db
}

// TestAvailabilityNotificationScenario walks the dispatch path end to end:
// a Borrowed book with two wishlisting users flips to Available, the update
// returns immediately, and the worker fans the job out to both users (its
// log carries the "Book [...] is now available." records and the
// processed=2 summary).
func TestAvailabilityNotificationScenario(t *testing.T) {
	RequireServer(t)
	db := openTestDB(t)

	book := CreateTestBook(t, "1984", "Borrowed")
	require.Equal(t, "Borrowed", book.AvailabilityStatus)

	wishlists := mysql.NewWishlistRepository(db)
	ctx := context.Background()
	for _, userID := range []uint{7, 9} {
		err := wishlists.Create(ctx, &wishlist.Entry{UserID: userID, BookID: book.ID})
		require.NoError(t, err, "seed wishlist entry for user %d", userID)
	}

	code, envelope := DoJSON(t, http.MethodPut,
		fmt.Sprintf("%s/books/%d", BaseURL(), book.ID),
		map[string]interface{}{"availabilityStatus": "Available"})

	// The HTTP response must not wait on (or reflect) the fan-out.
	require.Equal(t, http.StatusOK, code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Book updated successfully", envelope.Message)

	entries, err := wishlists.ListByBookID(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "both seeded users are in the fan-out set")

	t.Run("duplicate pair rejected", func(t *testing.T) {
		err := wishlists.Create(ctx, &wishlist.Entry{UserID: 7, BookID: book.ID})
		assert.ErrorIs(t, err, wishlist.ErrAlreadyWishlisted)
	})

	t.Run("repeat transition enqueues again", func(t *testing.T) {
		for _, status := range []string{"Borrowed", "Available"} {
			code, _ := DoJSON(t, http.MethodPut,
				fmt.Sprintf("%s/books/%d", BaseURL(), book.ID),
				map[string]interface{}{"availabilityStatus": status})
			require.Equal(t, http.StatusOK, code)
		}
	})
}

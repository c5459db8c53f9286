package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/soft_delete"

	"libcatalog/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool, and migrates the
// schema.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&WishlistModel{},
	)
}

// BookModel is the GORM mapping for the books table. DeletedAt uses the
// soft-delete plugin with a zero value for live rows, so the composite
// unique index (isbn, deleted_at) enforces ISBN uniqueness among live books
// while freeing the ISBN for reuse once a row is soft-deleted.
type BookModel struct {
	ID            uint                  `gorm:"primaryKey"`
	Title         string                `gorm:"size:500;not null"`
	Author        string                `gorm:"index;size:200;not null"`
	ISBN          string                `gorm:"uniqueIndex:uniq_books_isbn;size:13;not null"`
	PublishedYear int                   `gorm:"index;not null"`
	Status        string                `gorm:"type:enum('Available','Borrowed');not null;default:'Available'"`
	CreatedAt     time.Time             `gorm:"index:idx_books_created"`
	UpdatedAt     time.Time
	DeletedAt     soft_delete.DeletedAt `gorm:"softDelete:milli;uniqueIndex:uniq_books_isbn"`
}

// TableName sets the table name.
func (BookModel) TableName() string {
	return "books"
}

// WishlistModel is the GORM mapping for the wishlists table. The composite
// unique index makes a (user, book) pair wishlistable at most once.
type WishlistModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:uniq_wishlists_user_book;not null"`
	BookID    uint      `gorm:"uniqueIndex:uniq_wishlists_user_book;index;not null"`
	CreatedAt time.Time
}

// TableName sets the table name.
func (WishlistModel) TableName() string {
	return "wishlists"
}

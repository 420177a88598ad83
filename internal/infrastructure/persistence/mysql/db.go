package mysql

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loudent/library/internal/infrastructure/config"
)

// NewDB opens the MySQL connection, configures the pool, and migrates
// the schema. SQL logging is enabled only in debug mode.
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
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logrus.WithField("database", cfg.Database.DBName).Info("mysql connected")
	return db, nil
}

// autoMigrate creates tables and adds missing columns. Production
// deployments should run versioned migrations instead.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CatalogModel{},
		&AccountModel{},
		&ActivityModel{},
	)
}

// CatalogModel is the storage model for a catalog entry. BookIDs holds
// the copy identifiers as a JSON array; the domain entity carries them
// as a slice and the repository converts between the two.
type CatalogModel struct {
	ID              uint      `gorm:"primaryKey"`
	ISBN            string    `gorm:"uniqueIndex;size:32;not null"`
	Title           string    `gorm:"index;size:200;not null"`
	AuthorFirstName string    `gorm:"index:idx_author;size:100"`
	AuthorLastName  string    `gorm:"index:idx_author;size:100"`
	BookIDs         string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:""`
	UpdatedAt       time.Time `gorm:""`
}

func (CatalogModel) TableName() string {
	return "catalog_entries"
}

// AccountModel is the storage model for a member account.
type AccountModel struct {
	ID            uint      `gorm:"primaryKey"`
	AccountNumber string    `gorm:"uniqueIndex;size:32;not null"`
	FirstName     string    `gorm:"size:100"`
	LastName      string    `gorm:"size:100"`
	MemberSince   time.Time `gorm:""`
	CreatedAt     time.Time `gorm:""`
	UpdatedAt     time.Time `gorm:""`
}

func (AccountModel) TableName() string {
	return "accounts"
}

// ActivityModel is the storage model for an active checkout record.
// BookID is the business key; the isbn and account columns carry the
// indexes behind the secondary lookups.
type ActivityModel struct {
	ID            uint      `gorm:"primaryKey"`
	BookID        string    `gorm:"uniqueIndex;size:64;not null"`
	ISBN          string    `gorm:"index;size:32;not null"`
	Title         string    `gorm:"size:200"`
	AccountNumber string    `gorm:"index;size:32;not null"`
	CheckOutDate  time.Time `gorm:""`
	DueDate       time.Time `gorm:""`
	CreatedAt     time.Time `gorm:""`
	UpdatedAt     time.Time `gorm:""`
}

func (ActivityModel) TableName() string {
	return "activities"
}

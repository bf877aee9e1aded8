// Package sqlite implements ledger.Storage on a relational database through
// GORM, using the SQLite driver.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

var modelsToMigrate = []any{
	&HeadDB{},
	&BlockDB{},
	&WalletDB{},
}

type storage struct {
	db *gorm.DB
}

// Compile-time assertion to ensure storage implements ledger.Storage.
var _ ledger.Storage = (*storage)(nil)

// Open opens (or creates) the SQLite database at path, migrates the schema
// and makes sure the head row exists.
func Open(path string) (*storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(modelsToMigrate...); err != nil {
		return nil, err
	}

	genesis := headToDB(ledger.GenesisHead())
	if err := db.Where(HeadDB{ID: headRowID}).Attrs(genesis).FirstOrCreate(&HeadDB{}).Error; err != nil {
		return nil, err
	}

	return &storage{db: db}, nil
}

// Close releases the underlying database handle.
func (s *storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func loadHead(tx *gorm.DB) (ledger.Head, error) {
	var head HeadDB
	if err := tx.First(&head, headRowID).Error; err != nil {
		return ledger.Head{}, err
	}

	return headFromDB(head), nil
}

func (s *storage) LoadHead(ctx context.Context) (ledger.Head, error) {
	return loadHead(s.db.WithContext(ctx))
}

func (s *storage) GetWallet(ctx context.Context, id string) (ledger.Wallet, error) {
	var m WalletDB
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.Wallet{}, ledger.ErrWalletNotFound
	}
	if err != nil {
		return ledger.Wallet{}, err
	}

	return walletFromDB(m)
}

func (s *storage) FindWalletByAlias(ctx context.Context, alias string) (ledger.Wallet, error) {
	var m WalletDB
	err := s.db.WithContext(ctx).Where("alias = ?", alias).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.Wallet{}, ledger.ErrWalletNotFound
	}
	if err != nil {
		return ledger.Wallet{}, err
	}

	return walletFromDB(m)
}

// Snapshot reads the head, every block and every wallet in one transaction.
func (s *storage) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	var snapshot ledger.Snapshot

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		head, err := loadHead(tx)
		if err != nil {
			return err
		}

		var blockRows []BlockDB
		if err := tx.Order("block_index ASC").Find(&blockRows).Error; err != nil {
			return err
		}

		var walletRows []WalletDB
		if err := tx.Order("id ASC").Find(&walletRows).Error; err != nil {
			return err
		}

		blocks := make([]ledger.Block, 0, len(blockRows))
		for _, row := range blockRows {
			b, err := blockFromDB(row)
			if err != nil {
				return err
			}
			blocks = append(blocks, b)
		}

		wallets := make([]ledger.Wallet, 0, len(walletRows))
		for _, row := range walletRows {
			w, err := walletFromDB(row)
			if err != nil {
				return err
			}
			wallets = append(wallets, w)
		}

		snapshot = ledger.Snapshot{
			Head:    head,
			Blocks:  blocks,
			Wallets: wallets,
		}
		return nil
	})

	return snapshot, err
}

// Commit applies c in one transaction. The head row is only updated when its
// revision still equals c.Revision; otherwise the transaction is rolled back
// with ledger.ErrRevisionConflict.
func (s *storage) Commit(ctx context.Context, c ledger.Commit) error {
	blockRows := make([]BlockDB, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		row, err := blockToDB(b)
		if err != nil {
			return err
		}
		blockRows = append(blockRows, row)
	}

	walletRows := make([]WalletDB, 0, len(c.Wallets))
	for _, w := range c.Wallets {
		walletRows = append(walletRows, walletToDB(w))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&HeadDB{}).
			Where("id = ? AND revision = ?", headRowID, c.Revision).
			Updates(map[string]any{
				"next_index": c.Head.NextIndex,
				"hash":       c.Head.Hash,
				"revision":   c.Head.Revision,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledger.ErrRevisionConflict
		}

		if len(blockRows) > 0 {
			if err := tx.Create(&blockRows).Error; err != nil {
				return err
			}
		}

		if len(walletRows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&walletRows).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

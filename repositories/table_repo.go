package repositories

import (
	"context"

	"github.com/yeremiapane/reservation-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// Put menyimpan meja dengan semantik upsert by id (registrasi ulang
// dengan id yang sama menimpa record lama).
func (r *TableRepository) Put(ctx context.Context, table *models.Table) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(table).Error
}

// ExistsByNumber -> prasyarat admission: minimal satu meja dengan nomor ini.
func (r *TableRepository) ExistsByNumber(ctx context.Context, number int) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Table{}).
		Where("table_number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get mengembalikan gorm.ErrRecordNotFound apa adanya bila id tidak ada.
func (r *TableRepository) Get(ctx context.Context, id string) (*models.Table, error) {
	var table models.Table
	if err := r.DB.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) ListAll(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.DB.WithContext(ctx).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

package repositories

import (
	"context"

	"github.com/yeremiapane/reservation-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// Put melakukan upsert by id. Aman untuk retry karena idempotent.
func (r *ReservationRepository) Put(ctx context.Context, res *models.Reservation) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(res).Error
}

// sameDayScope membatasi query ke seluruh reservasi pada (tableNumber, date).
// Aturan iris interval tidak ditulis ulang di SQL; satu-satunya rumahnya
// models.Overlaps.
func sameDayScope(tx *gorm.DB, tableNumber int, date string) *gorm.DB {
	return tx.Model(&models.Reservation{}).
		Where("table_number = ? AND reservation_date = ?", tableNumber, date)
}

// lockedSameDayScope dipakai di dalam transaksi commit. Di MySQL/InnoDB
// scope ini jadi locking read (FOR UPDATE) supaya gap lock pada index
// (table_number, reservation_date) menahan insert yang balapan; Count/SELECT
// biasa di REPEATABLE READ hanya snapshot read tanpa lock. SQLite tidak
// mengenal FOR UPDATE dan sudah serial karena single writer.
func lockedSameDayScope(tx *gorm.DB, tableNumber int, date string) *gorm.DB {
	q := sameDayScope(tx, tableNumber, date)
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// FindOverlapping mencari reservasi pada (tableNumber, date) yang interval
// half-open-nya beririsan dengan [start, end). Slot back-to-back tidak
// ikut terjaring.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, tableNumber int, date, start, end string) ([]models.Reservation, error) {
	var sameDay []models.Reservation
	err := sameDayScope(r.DB.WithContext(ctx), tableNumber, date).Find(&sameDay).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.Reservation, 0, len(sameDay))
	for _, res := range sameDay {
		if models.Overlaps(res.SlotTimeStart, res.SlotTimeEnd, start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

// PutIfVacant mengulang cek bentrok dan menulis dalam satu transaksi, supaya
// dua admission yang balapan pada meja/tanggal yang sama tidak bisa sama-sama
// lolos. Return false berarti slot sudah terisi oleh reservasi lain.
func (r *ReservationRepository) PutIfVacant(ctx context.Context, res *models.Reservation) (bool, error) {
	vacant := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sameDay []models.Reservation
		if err := lockedSameDayScope(tx, res.TableNumber, res.ReservationDate).Find(&sameDay).Error; err != nil {
			return err
		}
		for _, other := range sameDay {
			if other.ID != res.ID &&
				models.Overlaps(other.SlotTimeStart, other.SlotTimeEnd, res.SlotTimeStart, res.SlotTimeEnd) {
				return nil
			}
		}
		vacant = true
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(res).Error
	})
	if err != nil {
		return false, err
	}
	return vacant, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.DB.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

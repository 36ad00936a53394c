package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/reservation-api/models"
	"github.com/yeremiapane/reservation-api/utils"
)

var (
	ErrTableNotFound = errors.New("no table registered with that number")
	ErrSlotConflict  = errors.New("slot overlaps an existing reservation")
	ErrInvalidSlot   = errors.New("slot must be HH:MM with slotTimeStart before slotTimeEnd")
)

// Format slot HH:MM; urutan leksikal == urutan waktu.
var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TableRegistry adalah kontrak store meja yang dibutuhkan admission.
type TableRegistry interface {
	ExistsByNumber(ctx context.Context, number int) (bool, error)
}

// ReservationLedger adalah kontrak store reservasi yang dibutuhkan admission.
type ReservationLedger interface {
	FindOverlapping(ctx context.Context, tableNumber int, date, start, end string) ([]models.Reservation, error)
	PutIfVacant(ctx context.Context, res *models.Reservation) (bool, error)
}

type ReservationRequest struct {
	ID            string
	TableNumber   int
	Date          string
	SlotTimeStart string
	SlotTimeEnd   string
	Attrs         models.Attrs
}

// ReservationService memvalidasi dan meng-commit reservasi baru.
// Stateless: semua state ada di store yang di-inject lewat konstruktor.
type ReservationService struct {
	tables  TableRegistry
	ledger  ReservationLedger
	timeout time.Duration
}

func NewReservationService(tables TableRegistry, ledger ReservationLedger, timeout time.Duration) *ReservationService {
	return &ReservationService{
		tables:  tables,
		ledger:  ledger,
		timeout: timeout,
	}
}

// Reserve menjalankan admission:
//  1. validasi bentuk slot,
//  2. cek keberadaan meja bernomor TableNumber (hanya keberadaan, bukan kapasitas),
//  3. cek bentrok interval pada (tableNumber, date) — reservasi dengan id yang
//     sama dengan kandidat diabaikan, jadi submit ulang request yang sama
//     bersifat idempotent,
//  4. pakai id dari caller bila ada, selain itu generate uuid v4,
//  5. commit lewat PutIfVacant (cek ulang + tulis dalam satu transaksi).
//
// Error dari store manapun membatalkan admission (fail closed); tidak ada
// retry internal, retry sepenuhnya keputusan caller.
func (s *ReservationService) Reserve(ctx context.Context, req ReservationRequest) (string, error) {
	if !slotPattern.MatchString(req.SlotTimeStart) ||
		!slotPattern.MatchString(req.SlotTimeEnd) ||
		req.SlotTimeStart >= req.SlotTimeEnd {
		return "", ErrInvalidSlot
	}

	exists, err := s.existsByNumber(ctx, req.TableNumber)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrTableNotFound
	}

	overlapping, err := s.findOverlapping(ctx, req)
	if err != nil {
		return "", err
	}
	for _, other := range overlapping {
		if req.ID != "" && other.ID == req.ID {
			continue
		}
		return "", ErrSlotConflict
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	res := &models.Reservation{
		ID:              id,
		TableNumber:     req.TableNumber,
		ReservationDate: req.Date,
		SlotTimeStart:   req.SlotTimeStart,
		SlotTimeEnd:     req.SlotTimeEnd,
		Attrs:           req.Attrs,
	}

	vacant, err := s.commit(ctx, res)
	if err != nil {
		return "", err
	}
	if !vacant {
		utils.InfoLogger.Printf("Reservation %s lost the slot race on table %d %s", id, req.TableNumber, req.Date)
		return "", ErrSlotConflict
	}
	return id, nil
}

func (s *ReservationService) existsByNumber(ctx context.Context, number int) (bool, error) {
	callCtx, cancel := s.bound(ctx)
	defer cancel()
	return s.tables.ExistsByNumber(callCtx, number)
}

func (s *ReservationService) findOverlapping(ctx context.Context, req ReservationRequest) ([]models.Reservation, error) {
	callCtx, cancel := s.bound(ctx)
	defer cancel()
	return s.ledger.FindOverlapping(callCtx, req.TableNumber, req.Date, req.SlotTimeStart, req.SlotTimeEnd)
}

func (s *ReservationService) commit(ctx context.Context, res *models.Reservation) (bool, error) {
	callCtx, cancel := s.bound(ctx)
	defer cancel()
	return s.ledger.PutIfVacant(callCtx, res)
}

// bound membatasi satu round trip ke store.
func (s *ReservationService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

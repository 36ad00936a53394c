package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-api/models"
	"github.com/yeremiapane/reservation-api/repositories"
	"github.com/yeremiapane/reservation-api/services"
	"github.com/yeremiapane/reservation-api/utils"
)

type ReservationController struct {
	Service *services.ReservationService
	Ledger  *repositories.ReservationRepository
}

func NewReservationController(service *services.ReservationService, ledger *repositories.ReservationRepository) *ReservationController {
	return &ReservationController{Service: service, Ledger: ledger}
}

// CreateReservation -> jalur tulis satu-satunya, semua lewat admission.
// Body: {tableNumber, date, slotTimeStart, slotTimeEnd, id?, ...attrs}.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tableNumber, ok := asInt(body["tableNumber"])
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("tableNumber is required and must be an integer"))
		return
	}
	date, ok := asString(body["date"])
	if !ok || date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date is required"))
		return
	}
	start, _ := asString(body["slotTimeStart"])
	end, _ := asString(body["slotTimeEnd"])
	callerID, _ := asString(body["id"])

	attrs := make(models.Attrs, len(body))
	for k, v := range body {
		switch k {
		case "id", "tableNumber", "date", "reservationDate", "slotTimeStart", "slotTimeEnd":
			continue
		}
		attrs[k] = v
	}

	req := services.ReservationRequest{
		ID:            callerID,
		TableNumber:   tableNumber,
		Date:          date,
		SlotTimeStart: start,
		SlotTimeEnd:   end,
		Attrs:         attrs,
	}

	id, err := rc.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound),
			errors.Is(err, services.ErrSlotConflict),
			errors.Is(err, services.ErrInvalidSlot):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %s admitted on table %d %s [%s-%s)", id, tableNumber, date, start, end)
	utils.RespondJSON(c, http.StatusOK, "Reservation created", gin.H{
		"reservationId": id,
	})
}

// GetAllReservations -> list reservasi, tanpa id dan reservationDate.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Ledger.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]map[string]interface{}, 0, len(reservations))
	for _, r := range reservations {
		views = append(views, reservationListView(r))
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", gin.H{
		"reservations": views,
	})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-api/models"
	"github.com/yeremiapane/reservation-api/repositories"
	"github.com/yeremiapane/reservation-api/utils"
	"gorm.io/gorm"
)

type TableController struct {
	Tables *repositories.TableRepository
}

func NewTableController(tables *repositories.TableRepository) *TableController {
	return &TableController{Tables: tables}
}

// RegisterTable -> mendaftarkan meja baru. Body bebas; "id" dipaksa jadi
// string dan "number" jadi int, sisanya disimpan verbatim sebagai attrs.
func (tc *TableController) RegisterTable(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	rawID, okID := body["id"]
	id, okStr := asString(rawID)
	if !okID || !okStr || id == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id is required"))
		return
	}

	number, okNum := asInt(body["number"])
	if !okNum {
		utils.RespondError(c, http.StatusBadRequest, errors.New("number is required and must be an integer"))
		return
	}

	attrs := make(models.Attrs, len(body))
	for k, v := range body {
		if k == "id" || k == "number" {
			continue
		}
		attrs[k] = v
	}

	table := models.Table{
		ID:          id,
		TableNumber: number,
		Attrs:       attrs,
	}

	if err := tc.Tables.Put(c.Request.Context(), &table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table registered: id=%s number=%d", table.ID, table.TableNumber)
	utils.RespondJSON(c, http.StatusCreated, "Table registered", gin.H{
		"id": rawID,
	})
}

// GetAllTables -> list seluruh meja, diproyeksikan tanpa field number.
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]map[string]interface{}, 0, len(tables))
	for _, t := range tables {
		views = append(views, tableView(t))
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", gin.H{
		"tables": views,
	})
}

// GetTableByID -> detail satu meja, proyeksi yang sama.
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	table, err := tc.Tables.Get(c.Request.Context(), tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table detail", tableView(*table))
}

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// ExportOrders streams the orders workbook as an xlsx download.
func (h *ReportHandler) ExportOrders(c *gin.Context) {
	f, err := h.svc.BuildOrdersWorkbook()
	if err != nil {
		RespondError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to write workbook")
	}
}

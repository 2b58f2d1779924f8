package admin_controller

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"gorm.io/gorm"
)

// ExportStatsPDF godoc
// @Summary Export dashboard statistics as PDF
// @Description Generates a PDF report of the company dashboard and streams it back
// @Tags Admin
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} models.ApiResponse
// @Router /admin/stats/pdf [get]
func ExportStatsPDF(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have a dashboard"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var company models.Company
	err := config.Gorm.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Company not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export statistics"))
		return
	}

	stats, err := collectStats(ctx, companyID)
	if err != nil {
		log.Printf("[admin.stats-pdf] ERROR collecting stats err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export statistics"))
		return
	}

	buffer := generateStatsPDF(&company, stats)
	if buffer.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export statistics"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="estadisticas.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buffer.Bytes())
}

func generateStatsPDF(company *models.Company, stats *models.DashboardStats) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("REPORTE DE ESTADÍSTICAS", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(company.Name, props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Summary counters
	summary := []struct {
		label string
		value int
	}{
		{"Mis productos", stats.MyProducts},
		{"Mis usuarios", stats.MyUsers},
		{"Empresas del sector opuesto", stats.OpposingCompanies},
		{"Mis conversaciones", stats.MyChats},
	}
	for _, row := range summary {
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(row.label, props.Text{
					Size:  10,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("%d", row.value), props.Text{
					Size:  10,
					Style: consts.Bold,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	sections := []struct {
		title  string
		points []models.ChartPoint
	}{
		{"Empresas por provincia", stats.ProvinceCompanies},
		{"Empresas con más productos", stats.MaxProducts},
		{"Productos más marcados como favoritos", stats.ProductFavorites},
		{"Empresas con más interacciones", stats.MaxInteractions},
		{"Clasificaciones con más productos", stats.MaxClassifications},
	}
	for _, section := range sections {
		m.Row(8, func() {})
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(section.title, props.Text{
					Size:  11,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
		for _, point := range section.points {
			m.Row(5, func() {
				m.Col(8, func() {
					m.Text(point.Label, props.Text{
						Size:  9,
						Color: mediumGray,
					})
				})
				m.Col(4, func() {
					m.Text(fmt.Sprintf("%d", point.Value), props.Text{
						Size:  9,
						Color: darkGray,
						Align: consts.Right,
					})
				})
			})
		}
	}

	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.stats-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}
	return &buf
}

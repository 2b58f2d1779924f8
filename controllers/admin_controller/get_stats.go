package admin_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetStats godoc
// @Summary Company dashboard statistics
// @Description Returns the dashboard counters and chart series for the caller's company
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/stats [get]
func GetStats(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have a dashboard"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := collectStats(ctx, companyID)
	if err != nil {
		log.Printf("[admin.stats] ERROR collecting stats err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load statistics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Statistics retrieved successfully", stats))
}

// collectStats runs the counter and chart aggregations against the pool.
// Shared with the PDF export.
func collectStats(ctx context.Context, companyID uuid.UUID) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var companyType string
	err := config.DB.QueryRow(ctx,
		`SELECT type FROM companies WHERE id = $1`, companyID).Scan(&companyType)
	if err != nil {
		return nil, err
	}
	opposing := models.CompanyTypeLaboratory
	if companyType == models.CompanyTypeLaboratory {
		opposing = models.CompanyTypePharmacy
	}

	// ================================
	// Summary counters
	// ================================
	counters := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&stats.MyProducts,
			`SELECT COUNT(*) FROM products WHERE company_id = $1`,
			[]interface{}{companyID}},
		{&stats.MyUsers,
			`SELECT COUNT(*) FROM users WHERE company_id = $1`,
			[]interface{}{companyID}},
		{&stats.OpposingCompanies,
			`SELECT COUNT(*) FROM companies WHERE type = $1 AND active = true`,
			[]interface{}{opposing}},
		{&stats.MyChats,
			`SELECT COUNT(DISTINCT c.id)
			 FROM chats c
			 JOIN users u ON u.id IN (c.starter_id, c.receiver_id)
			 WHERE u.company_id = $1`,
			[]interface{}{companyID}},
	}
	for _, counter := range counters {
		if err := config.DB.QueryRow(ctx, counter.query, counter.args...).Scan(counter.dest); err != nil {
			return nil, err
		}
	}

	// ================================
	// Chart series
	// ================================
	charts := []struct {
		dest  *[]models.ChartPoint
		query string
		args  []interface{}
	}{
		{&stats.ProvinceCompanies,
			`SELECT province, COUNT(*)
			 FROM companies WHERE active = true
			 GROUP BY province ORDER BY COUNT(*) DESC LIMIT 10`,
			nil},
		{&stats.MaxProducts,
			`SELECT co.name, COUNT(p.id)
			 FROM companies co
			 JOIN products p ON p.company_id = co.id
			 WHERE co.active = true AND co.type = $1
			 GROUP BY co.name ORDER BY COUNT(p.id) DESC LIMIT 5`,
			[]interface{}{companyType}},
		{&stats.ProductFavorites,
			`SELECT p.name, COUNT(fp.id)
			 FROM products p
			 JOIN favorite_products fp ON fp.product_id = p.id
			 WHERE p.company_id = $1
			 GROUP BY p.name ORDER BY COUNT(fp.id) DESC LIMIT 5`,
			[]interface{}{companyID}},
		{&stats.MaxInteractions,
			`SELECT co.name, COUNT(m.id)
			 FROM companies co
			 JOIN users u ON u.company_id = co.id
			 JOIN chats c ON u.id IN (c.starter_id, c.receiver_id)
			 JOIN messages m ON m.chat_id = c.id
			 WHERE co.active = true AND co.type = $1
			 GROUP BY co.name ORDER BY COUNT(m.id) DESC LIMIT 5`,
			[]interface{}{companyType}},
		{&stats.MaxClassifications,
			`SELECT classification, COUNT(*)
			 FROM products
			 GROUP BY classification ORDER BY COUNT(*) DESC LIMIT 5`,
			nil},
	}
	for _, chart := range charts {
		points, err := queryChart(ctx, chart.query, chart.args...)
		if err != nil {
			return nil, err
		}
		*chart.dest = points
	}

	return stats, nil
}

func queryChart(ctx context.Context, query string, args ...interface{}) ([]models.ChartPoint, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.ChartPoint, 0)
	for rows.Next() {
		var point models.ChartPoint
		if err := rows.Scan(&point.Label, &point.Value); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}

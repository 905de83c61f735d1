package repository

import (
	"time"

	"github.com/brightforge/erp/internal/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// ProductionListRow is a production record joined with its product.
type ProductionListRow struct {
	ProductionID     uint      `json:"production_id"`
	ProductID        uint      `json:"product_id"`
	ProductionDate   time.Time `json:"production_date"`
	QuantityProduced int       `json:"quantity_produced"`
	Status           string    `json:"status"`
	ProductName      string    `json:"product_name"`
	Category         string    `json:"category"`
}

func (r *ProductionRepository) List() ([]ProductionListRow, error) {
	var rows []ProductionListRow
	err := r.db.Raw(`
		SELECT pr.id AS production_id, pr.product_id, pr.production_date,
		       pr.quantity_produced, pr.status,
		       p.product_name, p.category
		FROM production pr
		JOIN products p ON pr.product_id = p.id
		ORDER BY pr.production_date DESC, pr.id DESC
	`).Scan(&rows).Error
	return rows, err
}

// ProductionDetailRow adds product price and current stock.
type ProductionDetailRow struct {
	ProductionListRow
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

func (r *ProductionRepository) GetDetail(id uint) (*ProductionDetailRow, error) {
	var row ProductionDetailRow
	res := r.db.Raw(`
		SELECT pr.id AS production_id, pr.product_id, pr.production_date,
		       pr.quantity_produced, pr.status,
		       p.product_name, p.category, p.price, p.stock_quantity
		FROM production pr
		JOIN products p ON pr.product_id = p.id
		WHERE pr.id = ?
	`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ProductionRepository) GetByID(id uint) (*entity.Production, error) {
	var p entity.Production
	err := r.db.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *ProductionRepository) ListByProduct(productID uint) ([]entity.Production, error) {
	var records []entity.Production
	err := r.db.Where("product_id = ?", productID).Order("production_date DESC").Find(&records).Error
	return records, err
}

// DB exposes the underlying handle for transactional use.
func (r *ProductionRepository) DB() *gorm.DB {
	return r.db
}

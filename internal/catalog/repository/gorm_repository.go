package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/duka-storefront/internal/catalog/domain"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{}, &domain.Category{})
}

func (r *GormCatalogRepository) ListProducts() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) FindProduct(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormCatalogRepository) UpdateProduct(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormCatalogRepository) DeleteProduct(id string) error {
	return r.db.Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *GormCatalogRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormCatalogRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *GormCatalogRepository) CreateCategory(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCatalogRepository) UpdateCategory(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *GormCatalogRepository) DeleteCategory(id string) error {
	return r.db.Delete(&domain.Category{}, "id = ?", id).Error
}

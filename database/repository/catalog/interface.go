package catalogRepo

import "quickserve/models"

// CatalogRepository exposes the read-only service catalogue.
type CatalogRepository interface {
	GetServiceByID(id string) (*models.Service, error)
	ListServices() ([]models.Service, error)
}

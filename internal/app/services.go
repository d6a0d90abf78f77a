// Package app provides service initialization.
package app

import (
	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Packer service.BoxPacker
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.Option

	if len(cfg.Catalog) > 0 {
		opts = append(opts, service.WithCatalog(cfg.Catalog))
	}

	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	packer := service.NewShelfPackerService(opts...)

	return &ServiceComponents{
		Packer: packer,
	}
}

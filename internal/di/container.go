package di

import (
	"github.com/alpacahq/marketcal/calendar"
	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/holidays"
	"github.com/alpacahq/marketcal/metrics"
	"github.com/alpacahq/marketcal/utils"
	"github.com/alpacahq/marketcal/utils/log"
)

type Container struct {
	calConfig  *utils.CalConfig
	computus   *calendar.Computus
	registry   *holidays.Registry
	service    *frontend.HolidayService
	httpServer *frontend.RpcServer
}

func NewContainer(cfg *utils.CalConfig) *Container {
	return &Container{calConfig: cfg}
}

func (c *Container) GetConfig() *utils.CalConfig {
	return c.calConfig
}

// GetComputus returns the Easter calculator shared by every table. With
// easter_cache disabled the caches are bypassed.
func (c *Container) GetComputus() *calendar.Computus {
	if c.computus != nil {
		return c.computus
	}
	if !c.calConfig.EasterCache {
		log.Info("easter cache disabled")
		if c.calConfig.PreloadFrom != 0 {
			log.Warn("skipping easter preload for %d-%d, the cache is disabled",
				c.calConfig.PreloadFrom, c.calConfig.PreloadTo)
		}
		c.computus = calendar.Uncached()
		return c.computus
	}

	c.computus = calendar.NewComputus()
	c.computus.Western.Observe(metrics.EasterCacheObserver("western"))
	c.computus.Orthodox.Observe(metrics.EasterCacheObserver("orthodox"))
	if c.calConfig.PreloadFrom != 0 {
		log.Info("preloading easter dates for %d-%d", c.calConfig.PreloadFrom, c.calConfig.PreloadTo)
		c.computus.Preload(c.calConfig.PreloadFrom, c.calConfig.PreloadTo)
	}
	return c.computus
}

// GetRegistry returns the holiday tables enabled by the configuration.
func (c *Container) GetRegistry() *holidays.Registry {
	if c.registry != nil {
		return c.registry
	}
	all := holidays.NewRegistry(c.GetComputus())
	for _, code := range c.calConfig.Countries {
		if _, err := all.Lookup(code); err != nil {
			log.Warn("ignoring configured country: %v", err)
		}
	}
	c.registry = all.Subset(c.calConfig.Served)
	log.Info("serving %d calendars", c.registry.Len())
	return c.registry
}

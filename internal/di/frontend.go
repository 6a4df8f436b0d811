package di

import (
	"github.com/alpacahq/marketcal/frontend"
	"github.com/alpacahq/marketcal/utils/log"
)

func (c *Container) GetHolidayService() *frontend.HolidayService {
	if c.service != nil {
		return c.service
	}
	registry := c.GetRegistry()
	if _, err := registry.Lookup(c.calConfig.DefaultCountry); err != nil {
		log.Warn("default country is not served: %v", err)
	}
	c.service = frontend.NewHolidayService(registry, c.GetComputus(), c.calConfig.DefaultCountry)
	c.service.SetLocation(c.calConfig.Timezone)
	return c.service
}

func (c *Container) GetHTTPServer() *frontend.RpcServer {
	if c.httpServer != nil {
		return c.httpServer
	}
	server, err := frontend.NewServer(c.GetHolidayService())
	if err != nil {
		log.Fatal("failed to create rpc server: %v", err)
	}
	c.httpServer = server
	return server
}

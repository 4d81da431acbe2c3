package cmd

import (
	"log/slog"
	"os"

	"zepta/internal/adapters/out/postgres"
	"zepta/internal/adapters/out/postgres/reviewrepo"
	"zepta/internal/core/application/usecases/commands"
	"zepta/internal/core/application/usecases/queries"
	"zepta/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into application handlers.
// All handler factories share one GORM connection and one unit of work
// factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	ratingRepo ports.RatingRepository
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		ratingRepo: reviewrepo.NewGormRatingRepository(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Logger returns the shared structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAgentLocationCommandHandler() commands.UpdateAgentLocationCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAgentLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(c.createUoWFactory(), c.ratingRepo)
}

func (c *CompositionRoot) CreateBulkAssignAgentsCommandHandler() commands.BulkAssignAgentsCommandHandler {
	return commands.NewBulkAssignAgentsCommandHandler(c.createUoWFactory(), c.ratingRepo, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentsQueryHandler() queries.GetAgentsQueryHandler {
	return queries.NewGetAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoresQueryHandler() queries.GetStoresQueryHandler {
	return queries.NewGetStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	appbook "libcatalog/internal/application/book"
	"libcatalog/internal/domain/book"
	"libcatalog/internal/infrastructure/config"
	"libcatalog/internal/infrastructure/persistence/mysql"
	"libcatalog/internal/infrastructure/persistence/redis"
	"libcatalog/internal/interface/http/handler"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	mysql.NewDB,
	redis.NewClient,
	provideDispatcher,
)

var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
)

var domainSet = wire.NewSet(
	book.NewService,
)

var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
)

// InitializeApp assembles the API server dependency graph.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideRouter,
		newApp,
	)
	return nil, nil, nil
}

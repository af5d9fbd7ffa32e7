//go:build wireinject
// +build wireinject

package wire

import (
	"settings-server/internal/customfields/httpapi"
	"settings-server/internal/customfields/persistence"
	"settings-server/internal/customfields/usecases"
	refhttpapi "settings-server/internal/referencedata/httpapi"
	refpersistence "settings-server/internal/referencedata/persistence"
	refusecases "settings-server/internal/referencedata/usecases"

	"github.com/google/wire"
)

var CustomFieldRepositorySet = wire.NewSet(
	persistence.NewGroupRepository,
	wire.Bind(new(usecases.GroupRepository), new(*persistence.SimpleGroupRepository)),
	persistence.NewDefinitionRepository,
	wire.Bind(new(usecases.DefinitionRepository), new(*persistence.SimpleDefinitionRepository)),
	persistence.NewOptionRepository,
	wire.Bind(new(usecases.OptionRepository), new(*persistence.SimpleOptionRepository)),
	persistence.NewValueRepository,
	wire.Bind(new(usecases.ValueRepository), new(*persistence.SimpleValueRepository)),
)

func InitializeGroupController() (*httpapi.GroupController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewGroupRepository,
		wire.Bind(new(usecases.GroupRepository), new(*persistence.SimpleGroupRepository)),
		persistence.NewDefinitionRepository,
		wire.Bind(new(usecases.DefinitionRepository), new(*persistence.SimpleDefinitionRepository)),
		usecases.NewGroupService,
		wire.Bind(new(usecases.GroupService), new(*usecases.SimpleGroupService)),
		httpapi.NewGroupController,
	)
	return nil, nil
}

func InitializeDefinitionController() (*httpapi.DefinitionController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CustomFieldRepositorySet,
		usecases.NewOptionService,
		wire.Bind(new(usecases.OptionService), new(*usecases.SimpleOptionService)),
		usecases.NewDefinitionService,
		wire.Bind(new(usecases.DefinitionService), new(*usecases.SimpleDefinitionService)),
		httpapi.NewDefinitionController,
	)
	return nil, nil
}

func InitializeValueController() (*httpapi.ValueController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CustomFieldRepositorySet,
		usecases.NewOptionService,
		wire.Bind(new(usecases.OptionService), new(*usecases.SimpleOptionService)),
		usecases.NewDefinitionService,
		wire.Bind(new(usecases.DefinitionService), new(*usecases.SimpleDefinitionService)),
		usecases.NewValueService,
		wire.Bind(new(usecases.ValueService), new(*usecases.SimpleValueService)),
		httpapi.NewValueController,
	)
	return nil, nil
}

func InitializeCountryController() (*refhttpapi.CountryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		refpersistence.NewCountryRepository,
		wire.Bind(new(refusecases.CountryRepository), new(*refpersistence.SimpleCountryRepository)),
		refusecases.NewCountryService,
		wire.Bind(new(refusecases.CountryService), new(*refusecases.SimpleCountryService)),
		refhttpapi.NewCountryController,
	)
	return nil, nil
}

func InitializeGeneralCodeController() (*refhttpapi.GeneralCodeController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		refpersistence.NewGeneralCodeRepository,
		wire.Bind(new(refusecases.GeneralCodeRepository), new(*refpersistence.SimpleGeneralCodeRepository)),
		refusecases.NewGeneralCodeService,
		wire.Bind(new(refusecases.GeneralCodeService), new(*refusecases.SimpleGeneralCodeService)),
		refhttpapi.NewGeneralCodeController,
	)
	return nil, nil
}

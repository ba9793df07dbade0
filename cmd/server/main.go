package main

import (
	"github.com/sevasetu/sevasetu-backend/internal/catalog"
	"github.com/sevasetu/sevasetu-backend/internal/config"
	"github.com/sevasetu/sevasetu-backend/internal/donation"
	"github.com/sevasetu/sevasetu-backend/internal/ngo"
	"github.com/sevasetu/sevasetu-backend/internal/server"
	"github.com/sevasetu/sevasetu-backend/internal/utils"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := utils.New(cfg)
	osFs := afero.NewOsFs()

	// The organization dataset is loaded once and immutable afterwards;
	// a missing or malformed dataset prevents the process from serving.
	dataset, err := ngo.LoadDataset(osFs, cfg.NGODataPath)
	if err != nil {
		logger.Fatal("failed to load NGO dataset: ", err)
	}
	geoIndex := ngo.NewIndex(dataset, cfg.FallbackCity)
	logger.Infof("indexed %d organizations across %d cities", geoIndex.Len(), len(dataset))

	ngoService := ngo.NewService(dataset, geoIndex, logger)
	ngoHandler := ngo.NewHandler(ngoService, logger)

	store := donation.NewFileStore(osFs, cfg.DonationsPath)
	donationService := donation.NewService(store, logger)
	donationHandler := donation.NewHandler(donationService, logger)

	catalogService := catalog.NewService(osFs, cfg.CatalogPath)
	catalogHandler := catalog.NewHandler(catalogService, logger)

	s := server.New(cfg, logger)
	s.SetupRoutes(ngoHandler, donationHandler, catalogHandler)

	if err := s.Start(); err != nil {
		logger.Fatal("server failed to start: ", err)
	}
}

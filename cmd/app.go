package main

import (
	"context"

	"xestetik/internal/config"
	"xestetik/internal/content"
	"xestetik/internal/handlers"
	"xestetik/internal/repositories"
	"xestetik/internal/services"
	"xestetik/pkg/database"

	"go.uber.org/zap"
)

// application holds the wired dependencies shared by the commands
type application struct {
	leadRepo    repositories.LeadRepository
	closeStore  func()
	catalog     services.CatalogService
	contentRepo repositories.ContentRepository
	assets      services.AssetService
	views       services.ViewService
	leads       services.LeadService
	media       services.MediaService
	qr          services.QRService
	catalogPDF  services.CatalogPDFService
}

func newApplication(ctx context.Context, cfg *config.AppConfig) (*application, error) {
	productRepo, err := repositories.NewCatalogRepository(content.Catalog)
	if err != nil {
		return nil, err
	}
	contentRepo, err := repositories.NewContentRepository(content.Reviews, content.Policies)
	if err != nil {
		return nil, err
	}
	remote, err := newRemoteMedia(cfg)
	if err != nil {
		return nil, err
	}
	leadRepo, closeStore, err := openLeadStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	assets := services.NewAssetService(cfg.Server.StaticDir, "/static")
	catalog := services.NewCatalogService(productRepo)
	zap.S().Infof("Catalog loaded: %d products", catalog.Count())

	return &application{
		leadRepo:    leadRepo,
		closeStore:  closeStore,
		catalog:     catalog,
		contentRepo: contentRepo,
		assets:      assets,
		views:       services.NewViewService(catalog, assets),
		leads:       services.NewLeadService(leadRepo),
		media:       services.NewMediaService(assets, remote, cfg.Media.HeroVideoURL),
		qr:          services.NewQRService(assets, handlers.QRTargets(cfg.Social)),
		catalogPDF:  services.NewCatalogPDFService(catalog, assets, cfg.Site.CatalogPDF, cfg.Site.Brand),
	}, nil
}

func (a *application) Close() {
	a.closeStore()
}

func (a *application) handlers(cfg *config.AppConfig) *handlers.Handlers {
	pages := handlers.NewPages(cfg)
	return &handlers.Handlers{
		Pages:    pages,
		Site:     handlers.NewSiteHandlers(pages, a.views, a.contentRepo, a.media, a.qr, cfg),
		Products: handlers.NewProductHandlers(pages, a.catalog, a.views, a.catalogPDF),
		Leads:    handlers.NewLeadHandlers(a.leads),
		Policies: handlers.NewPolicyHandlers(pages, a.contentRepo),
		Health:   handlers.NewHealthHandlers(a.catalog, a.leadRepo),
	}
}

// openLeadStore picks PostgreSQL when a DATABASE_URL is configured and the
// local SQLite file otherwise.
func openLeadStore(ctx context.Context, cfg *config.AppConfig) (repositories.LeadRepository, func(), error) {
	if cfg.UsePostgres() {
		pool, err := database.NewPool(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPgLeadRepo(pool), pool.Close, nil
	}

	db, err := database.OpenSQLite(ctx, cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewLeadRepo(db), func() { _ = db.Close() }, nil
}

func newRemoteMedia(cfg *config.AppConfig) (services.RemoteMedia, error) {
	switch {
	case cfg.MinioEnabled():
		minioSvc, err := services.NewMinioService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
		if err != nil {
			return nil, err
		}
		return services.NewBucketRemoteMedia(minioSvc, cfg.Minio.Bucket, cfg.Minio.Prefix, cfg.Media.BaseURL), nil
	case cfg.Media.BaseURL != "" && len(cfg.Media.Files) > 0:
		return services.NewStaticRemoteMedia(cfg.Media.BaseURL, cfg.Media.Files), nil
	}
	return nil, nil
}

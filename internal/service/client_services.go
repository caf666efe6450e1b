package service

import (
	"github.com/MKhiriev/go-read-later/internal/adapter"
	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/store"
)

type ClientServices struct {
	SyncEngine      SyncEngine
	DownloadService ArticleDownloadService
	SyncJob         ClientSyncJob
}

// NewClientServices wires the client services. downloader may be nil, in
// which case articles are never downloaded for offline reading.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteService, downloader adapter.ContentDownloader, syncCfg config.ClientSync) *ClientServices {
	engine := NewSyncEngine(storages, remote, syncCfg)

	var downloadSvc ArticleDownloadService
	if downloader != nil {
		downloadSvc = NewArticleDownloadService(storages.Entities, downloader)
	}

	return &ClientServices{
		SyncEngine:      engine,
		DownloadService: downloadSvc,
		SyncJob:         NewClientSyncJob(engine, downloadSvc),
	}
}

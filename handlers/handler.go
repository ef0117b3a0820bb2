// Package handlers exposes the JSON API over gin.
package handlers

import (
	"time"

	"astrokalki/catalog"
	"astrokalki/config"
	"astrokalki/services"
	"astrokalki/storage"

	"go.uber.org/zap"
)

// Handler carries the dependencies of every endpoint. Analyzer and Notifier
// may be nil; the AI endpoints then answer 503 and events are dropped.
type Handler struct {
	store          storage.Storage
	analyzer       services.Analyzer
	notifier       services.Notifier
	catalog        *catalog.Catalog
	features       config.Features
	admin          config.AdminConfig
	meetingBaseURL string
	logger         *zap.Logger
	now            func() time.Time
}

type Deps struct {
	Store          storage.Storage
	Analyzer       services.Analyzer
	Notifier       services.Notifier
	Catalog        *catalog.Catalog
	Features       config.Features
	Admin          config.AdminConfig
	MeetingBaseURL string
	Logger         *zap.Logger
}

func New(d Deps) *Handler {
	h := &Handler{
		store:          d.Store,
		analyzer:       d.Analyzer,
		notifier:       d.Notifier,
		catalog:        d.Catalog,
		features:       d.Features,
		admin:          d.Admin,
		meetingBaseURL: d.MeetingBaseURL,
		logger:         d.Logger,
		now:            time.Now,
	}
	if h.catalog == nil {
		h.catalog = catalog.Default()
	}
	if h.meetingBaseURL == "" {
		h.meetingBaseURL = config.DefaultMeetingBaseURL
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.admin.TokenTTL <= 0 {
		h.admin.TokenTTL = 24 * time.Hour
	}
	return h
}

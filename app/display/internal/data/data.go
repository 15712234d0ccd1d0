package data

import (
	"errors"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/storage"
)

type Data struct {
	store *storage.Storage
}

var errNoDatabase = errors.New("data.database is not configured")

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	if c == nil || c.Database == nil {
		return nil, nil, errNoDatabase
	}
	store, err := storage.NewStorage(config.DBConfig{
		Driver: c.Database.Driver,
		Source: c.Database.Source,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		store.Close()
	}
	return &Data{store: store}, cleanup, nil
}

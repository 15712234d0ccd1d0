package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
	"github.com/shyam3raju/AI-Agent/app/display/internal/data"
	"github.com/shyam3raju/AI-Agent/app/display/internal/server"
	"github.com/shyam3raju/AI-Agent/app/display/internal/service"
	"github.com/shyam3raju/AI-Agent/app/display/internal/usecase"
)

// initApp 按 data → usecase → service → server 的顺序组装应用
func initApp(cs *conf.Server, cd *conf.Data, cr *conf.Research, logger log.Logger) (*kratos.App, func(), error) {
	d, cleanup, err := data.NewData(cd, logger)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := server.NewResearchPipeline(cr, prometheus.DefaultRegisterer, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	reportRepo := data.NewReportRepo(d, logger)
	reportUseCase := usecase.NewReportUseCase(reportRepo, pipeline, logger)
	displayService := service.NewDisplayService(reportUseCase, logger)
	httpServer := server.NewHTTPServer(cs, displayService, logger)

	return newApp(logger, httpServer), cleanup, nil
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

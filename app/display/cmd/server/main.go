package main

import (
	"errors"
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	Name    = "research-display"
	Version string

	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/display/configs/config.yaml", "config path, eg: -conf config.yaml")
}

// loadBootstrap 读取配置文件，server 与 data 段缺失时报错
func loadBootstrap(path string) (*conf.Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(path)))
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, err
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, err
	}
	if bc.Server == nil {
		return nil, errors.New("config: server section is required")
	}
	if bc.Data == nil || bc.Data.Database == nil {
		return nil, errors.New("config: data.database section is required")
	}
	return &bc, nil
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	helper := log.NewHelper(logger)

	bc, err := loadBootstrap(flagconf)
	if err != nil {
		helper.Fatalf("加载配置失败 [%s]: %v", flagconf, err)
	}

	app, cleanup, err := initApp(bc.Server, bc.Data, bc.Research, logger)
	if err != nil {
		helper.Fatalf("初始化服务失败: %v", err)
	}
	defer cleanup()

	// 阻塞直到收到退出信号
	if err := app.Run(); err != nil {
		helper.Errorf("服务异常退出: %v", err)
	}
}

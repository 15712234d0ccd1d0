package data

import (
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/shyam3raju/AI-Agent/app/display/internal/conf"
)

func TestNewData_MissingDatabase(t *testing.T) {
	for _, c := range []*conf.Data{nil, {}} {
		d, cleanup, err := NewData(c, log.DefaultLogger)
		if !errors.Is(err, errNoDatabase) {
			t.Errorf("expected errNoDatabase, got %v", err)
		}
		if d != nil || cleanup != nil {
			t.Errorf("expected no data and no cleanup on error")
		}
	}
}

func TestNewData_SQLite(t *testing.T) {
	d, cleanup, err := NewData(&conf.Data{Database: &conf.Database{Driver: "sqlite", Source: ":memory:"}}, log.DefaultLogger)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer cleanup()
	if d.store == nil {
		t.Errorf("expected store to be initialized")
	}
}

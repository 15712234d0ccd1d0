package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// 支持的数据库驱动
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrNotFound 报告不存在
var ErrNotFound = errors.New("report not found")

// created_at 以固定宽度的 UTC 文本保存，两种数据库下都能按字符串排序
const timeLayout = "2006-01-02 15:04:05.000000"

// Storage 最终报告的 SQL 存储
type Storage struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Summary 列表页展示的报告摘要
type Summary struct {
	ID        string       `json:"id"`
	Query     string       `json:"query"`
	Status    model.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// Record 一条完整的报告记录
type Record struct {
	Summary
	Report *model.FinalReport `json:"report"`
}

// NewStorage 按配置打开数据库并初始化表结构
func NewStorage(cfg config.DBConfig) (*Storage, error) {
	db, err := sql.Open(cfg.Driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	s, err := New(db, cfg.Driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New 基于已打开的连接创建存储
func New(db *sql.DB, driver string) (*Storage, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if driver == DriverSQLite {
		// SQLite 只支持单写，内存库在多连接下也不共享
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db, driver: driver, now: time.Now}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS research_reports (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			status TEXT NOT NULL,
			report TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_research_reports_created_at ON research_reports (created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %s: %w", query, err)
		}
	}
	return nil
}

// SaveReport 保存报告，返回新生成的 id
func (s *Storage) SaveReport(ctx context.Context, report *model.FinalReport) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO research_reports (id, query, status, report, created_at)
		VALUES (?, ?, ?, ?, ?)`),
		id, report.Query, string(report.Status), string(data), s.now().UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}
	return id, nil
}

// GetReport 按 id 读取报告
func (s *Storage) GetReport(ctx context.Context, id string) (*Record, error) {
	var (
		rec       Record
		status    string
		data      string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, query, status, report, created_at
		FROM research_reports WHERE id = ?`), id).
		Scan(&rec.ID, &rec.Query, &status, &data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	rec.Status = model.Status(status)
	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	rec.Report = &model.FinalReport{}
	if err := json.Unmarshal([]byte(data), rec.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &rec, nil
}

// ListReports 按创建时间倒序分页，page 从 1 开始
func (s *Storage) ListReports(ctx context.Context, page, pageSize int) ([]Summary, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM research_reports`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, query, status, created_at
		FROM research_reports
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var list []Summary
	for rows.Next() {
		var (
			item      Summary
			status    string
			createdAt string
		)
		if err := rows.Scan(&item.ID, &item.Query, &status, &createdAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan report: %w", err)
		}
		item.Status = model.Status(status)
		if item.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, 0, fmt.Errorf("failed to parse created_at: %w", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// rebind 把 ? 占位符替换为 postgres 的 $n
func (s *Storage) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

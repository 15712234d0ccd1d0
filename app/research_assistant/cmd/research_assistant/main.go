package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/assistant"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/config"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/logger"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/metrics"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/orchestrator"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/output"
	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/storage"
)

var exampleQueries = []string{
	"Current trends in generative AI and large language models",
	"AI safety and regulatory developments in 2024",
	"Enterprise AI adoption and business transformation",
	"Impact of multimodal AI on business operations",
	"Open-source AI models vs proprietary solutions",
	"AI governance and compliance frameworks for enterprises",
	"Future of AI in healthcare and medical research",
	"AI-powered automation in manufacturing and supply chain",
}

var errExit = errors.New("exit requested")

func main() {
	var confPath, envPath string

	root := &cobra.Command{
		Use:          "research_assistant",
		Short:        "AI research & decision assistant",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&confPath, "conf", "configs/config.yaml", "config file path")
	root.PersistentFlags().StringVar(&envPath, "env", ".env", "dotenv file path")

	root.AddCommand(runCMD(&confPath, &envPath), interactiveCMD(&confPath, &envPath))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCMD(confPath, envPath *string) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "run [query]",
		Short: "Run the research pipeline once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" && len(args) == 1 {
				query = args[0]
			}
			query = strings.TrimSpace(query)
			if query == "" {
				return fmt.Errorf("query is required")
			}

			app, err := setup(cmd.Context(), *confPath, *envPath)
			if err != nil {
				return err
			}
			defer app.close()

			app.process(cmd.Context(), cmd.OutOrStdout(), query)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "research query")
	return cmd
}

func interactiveCMD(confPath, envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Choose queries from a menu and run them one after another",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), *confPath, *envPath)
			if err != nil {
				return err
			}
			defer app.close()

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			for {
				query, err := chooseQuery(in, out)
				if errors.Is(err, errExit) {
					fmt.Fprintln(out, "👋 Goodbye!")
					return nil
				}
				if err != nil {
					return err
				}

				app.process(cmd.Context(), out, query)

				answer, ok := prompt(in, out, "\n🔄 Would you like to analyze another query? (y/n): ")
				if !ok || !strings.HasPrefix(strings.ToLower(answer), "y") {
					fmt.Fprintln(out, "👋 Thank you for using AI Research & Decision Assistant!")
					return nil
				}
			}
		},
	}
}

// application 一次进程内共享的组件
type application struct {
	cfg    *config.Config
	orch   *orchestrator.Orchestrator
	writer *output.Writer
	store  *storage.Storage
}

func setup(ctx context.Context, confPath, envPath string) (*application, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. 加载 .env，文件不存在时忽略
	loadDotEnv(envPath)

	// 2. 加载配置，缺少配置文件时使用默认值
	cfg, err := config.LoadConfig(confPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("无法加载配置文件: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置错误: %w", err)
	}

	// 3. 初始化日志
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		logger.Log.Warn("未设置 GROQ_API_KEY，所有阶段将使用预置结果")
	}

	// 4. 组装流水线
	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
	orch, err := assistant.NewFromConfig(ctx, cfg, rec, func(phase orchestrator.Phase, progress int) {
		logger.Log.Debugf("阶段 %s (%d%%)", phase, progress)
	})
	if err != nil {
		return nil, err
	}

	app := &application{cfg: cfg, orch: orch, writer: output.NewWriter(cfg.Output.Dir)}

	// 5. 可选的数据库存储
	if cfg.DB.Driver != "" {
		store, err := storage.NewStorage(cfg.DB)
		if err != nil {
			logger.Log.Errorf("无法连接数据库: %v. 将仅保存 JSON 文件。", err)
		} else {
			app.store = store
			logger.Log.Info("已成功连接到数据库")
		}
	}
	return app, nil
}

func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Warnf("无法加载 %s: %v", path, err)
	}
}

func (a *application) close() {
	if a.store != nil {
		a.store.Close()
	}
}

func (a *application) process(ctx context.Context, out io.Writer, query string) {
	fmt.Fprintf(out, "\n🔍 Processing your query...\n📋 Query: %s\n\n⏳ This may take 15-30 seconds...\n", query)

	report := a.orch.ProcessQuery(ctx, query)

	banner := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n🎯 AI RESEARCH & DECISION ASSISTANT RESULTS\n%s\n", banner, banner)
	fmt.Fprintln(out, output.Format(report))

	stamped, latest, err := a.writer.Save(report, time.Now())
	if err != nil {
		logger.Log.Errorf("保存结果失败: %v", err)
	} else {
		fmt.Fprintf(out, "💾 Results saved to %s and %s\n", stamped, latest)
	}

	if a.store != nil {
		id, err := a.store.SaveReport(ctx, report)
		if err != nil {
			logger.Log.Errorf("保存报告到数据库失败: %v", err)
		} else {
			logger.Log.Infof("报告已保存，id=%s", id)
		}
	}
}

func chooseQuery(in *bufio.Scanner, out io.Writer) (string, error) {
	fmt.Fprintf(out, "\n🎯 AI RESEARCH & DECISION ASSISTANT\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintln(out, "Choose an option:\n1. Enter your own research query\n2. Select from example queries\n3. Exit")

	for {
		choice, ok := prompt(in, out, "\nEnter your choice (1-3): ")
		if !ok {
			return "", errExit
		}
		switch choice {
		case "1":
			query, ok := prompt(in, out, "\n📝 Enter your AI research query:\nQuery: ")
			if !ok {
				return "", errExit
			}
			if query != "" {
				return query, nil
			}
			fmt.Fprintln(out, "❌ Please enter a valid query.")
		case "2":
			fmt.Fprintf(out, "\n📋 Example Queries:\n%s\n", strings.Repeat("-", 30))
			for i, q := range exampleQueries {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			for {
				sel, ok := prompt(in, out, fmt.Sprintf("\nSelect example (1-%d): ", len(exampleQueries)))
				if !ok {
					return "", errExit
				}
				n, err := strconv.Atoi(sel)
				if err != nil {
					fmt.Fprintln(out, "❌ Please enter a valid number")
					continue
				}
				if n >= 1 && n <= len(exampleQueries) {
					return exampleQueries[n-1], nil
				}
				fmt.Fprintf(out, "❌ Please enter a number between 1 and %d\n", len(exampleQueries))
			}
		case "3":
			return "", errExit
		default:
			fmt.Fprintln(out, "❌ Please enter 1, 2, or 3")
		}
	}
}

// prompt 输出提示并读取一行，输入结束时返回 false
func prompt(in *bufio.Scanner, out io.Writer, msg string) (string, bool) {
	fmt.Fprint(out, msg)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

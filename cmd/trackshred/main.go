package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"trackshred/internal/app"
	"trackshred/internal/cli"
	"trackshred/internal/config"
	"trackshred/internal/logging"
	"trackshred/internal/reporting"
	"trackshred/internal/shred"
	"trackshred/internal/system"
)

const (
	Version = "1.0.0"
	AppName = "TrackShred"

	// Exit codes
	EXIT_SUCCESS          = 0
	EXIT_GENERAL_ERROR    = 1
	EXIT_PERMISSION_ERROR = 2
	EXIT_INVALID_INPUT    = 3
)

// errInvalidInput помечает ошибки входных данных для кода возврата 3
var errInvalidInput = errors.New("некорректные входные данные")

var (
	dryRun         bool
	verbose        bool
	configPath     string
	logPath        string
	reportPath     string
	profile        string
	passes         int
	metadataOnly   bool
	deepClean      bool
	listOps        bool
	includeHistory bool
)

// CLI команды
var rootCmd = &cobra.Command{
	Use:     "trackshred",
	Short:   "TrackShred - безопасное удаление файлов и следов",
	Long:    "Утилита для безопасного удаления файлов, очистки метаданных и чистки следов приватности",
	Version: Version,
}

var shredCmd = &cobra.Command{
	Use:   "shred [цель]",
	Short: "Затереть файл или директорию",
	Args:  cobra.ExactArgs(1),
	RunE:  runShred,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Системная чистка следов приватности",
	RunE:  runSweep,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Показать внешние инструменты и отслеживаемые пути",
	RunE:  runInfo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Тестовый режим")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный вывод")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Путь к конфигурации")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Путь к файлу логов")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "", "Сохранить отчёт в JSON файл")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Профиль затирания (quick/default/paranoid)")

	shredCmd.Flags().IntVarP(&passes, "passes", "p", 0, "Количество проходов (1-10)")
	shredCmd.Flags().BoolVar(&metadataOnly, "metadata-only", false, "Только очистка метаданных, без удаления")
	shredCmd.Flags().BoolVar(&deepClean, "deep", false, "Дополнительно выполнить системную чистку")

	sweepCmd.Flags().BoolVar(&listOps, "list", false, "Показать категории чистки")
	sweepCmd.Flags().BoolVar(&includeHistory, "include-history", false, "Включить чистку истории оболочки")

	rootCmd.AddCommand(shredCmd, sweepCmd, infoCmd)
}

// loadConfig загружает конфигурацию и применяет флаги поверх неё
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	if profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
		}
	}

	if passes != 0 {
		cfg.Shred.Passes = passes
	}
	if logPath != "" {
		cfg.Logging.File = logPath
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	return cfg, nil
}

// newContext создает контекст, отменяемый по SIGINT/SIGTERM
func newContext(logger *logging.AuditLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Log("WARN", "Получен сигнал, завершаем работу", "signal", sig.String())
		fmt.Printf("\n[INFO] Получен сигнал %s, завершаем работу...\n", sig.String())
		cancel()
	}()

	return ctx, cancel
}

func runShred(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewAuditLogger(cfg.Logging.Level, cfg.Logging.File, verbose)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer logger.Close()

	logger.Log("INFO", "Запуск TrackShred", "version", Version, "dry_run", dryRun)

	mode := shred.ModeDestroy
	if metadataOnly {
		mode = shred.ModeMetadataOnly
	}

	plan := shred.Plan{Passes: cfg.Shred.Passes, Simulate: dryRun}
	ts, err := app.New(cfg, plan, logger)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	ctx, cancel := newContext(logger)
	defer cancel()

	ts.ProcessTarget(ctx, args[0], mode)

	if deepClean {
		cleaner, err := ts.NewTraceCleaner()
		if err != nil {
			ts.Result().AddError("deep clean", err)
		} else {
			ts.DeepClean(ctx, cleaner)
		}
	}

	return finish(ts.Result(), logger)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if includeHistory {
		cfg.Clean.ShellHistory = true
	}

	logger, err := logging.NewAuditLogger(cfg.Logging.Level, cfg.Logging.File, verbose)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer logger.Close()

	plan := shred.Plan{Passes: cfg.Shred.Passes, Simulate: dryRun}
	ts, err := app.New(cfg, plan, logger)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	cleaner, err := ts.NewTraceCleaner()
	if err != nil {
		return err
	}

	if listOps {
		return cli.NewSweepCommand(logger).ListOperations(cleaner, cfg.Clean.ShellHistory)
	}

	logger.Log("INFO", "Запуск системной чистки", "dry_run", dryRun, "shell_history", cfg.Clean.ShellHistory)

	ctx, cancel := newContext(logger)
	defer cancel()

	ts.DeepClean(ctx, cleaner)

	return finish(ts.Result(), logger)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewAuditLogger(cfg.Logging.Level, cfg.Logging.File, verbose)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	defer logger.Close()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("не удалось определить домашнюю директорию: %w", err)
	}

	fmt.Printf("%s v%s\n\n", AppName, Version)

	cleaner := system.NewTraceCleaner(home, logger, true)
	return cli.NewSweepCommand(logger).ShowInfo(cleaner, home)
}

// finish выводит сводку, сохраняет отчёт и определяет код возврата
func finish(result *app.Result, logger *logging.AuditLogger) error {
	fmt.Print(reporting.Render(result))

	if reportPath != "" {
		// Ошибка сохранения отчёта не меняет статус запуска
		if err := reporting.Save(result, reportPath); err != nil {
			logger.Log("WARN", "Ошибка сохранения отчёта", "error", err.Error())
		} else {
			fmt.Printf("Отчёт сохранён: %s\n", reportPath)
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("некоторые операции завершились с ошибкой")
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Корректные exit codes
		switch {
		case errors.Is(err, errInvalidInput):
			os.Exit(EXIT_INVALID_INPUT)
		case errors.Is(err, fs.ErrPermission):
			os.Exit(EXIT_PERMISSION_ERROR)
		default:
			os.Exit(EXIT_GENERAL_ERROR)
		}
	}
	os.Exit(EXIT_SUCCESS)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jhoicas/subguard-api/internal/bootstrap"
	"github.com/jhoicas/subguard-api/pkg/config"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

// Actor con el que la CLI firma sus entradas del historial.
const cliActor = "subguardctl"

var (
	logLevel string

	// services y closeStore los abre PersistentPreRunE para cada comando.
	services   *bootstrap.Services
	closeStore = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "subguardctl",
	Short: "Administración del registro de activos SubGuard",
	Long: `subguardctl opera sobre el mismo almacenamiento que la API
(STORAGE_BACKEND, STORAGE_DIR, REDIS_ADDR, DATABASE_URL...).

Ejemplos:
  subguardctl stats
  subguardctl assets --view hardware
  subguardctl forecast
  subguardctl export pdf -o registro.pdf
  subguardctl import registro.xml
  subguardctl renew 4
  subguardctl decide r1 approve`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if logLevel != "debug" {
			pterm.DisableDebugMessages()
		} else {
			pterm.EnableDebugMessages()
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		store, closeFn, err := bootstrap.OpenStore(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("abrir almacenamiento: %w", err)
		}
		closeStore = closeFn
		pterm.Debug.Printf("almacenamiento %s (prefijo %q)\n", cfg.Storage.Backend, cfg.Storage.Prefix)

		services = bootstrap.Build(store, bootstrap.Options{
			Log: logger.NewWithWriter(os.Stderr, logLevel),
		})
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		closeStore()
	},
}

// Execute ejecuta el comando raíz.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n[FATAL] subguardctl: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log (debug, info, warn, error)")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newForecastCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newRenewCmd())
	rootCmd.AddCommand(newDecideCmd())
	rootCmd.AddCommand(newSeedCmd())
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	"github.com/jhoicas/subguard-api/internal/infrastructure/xmlreport"
)

func newExportCmd() *cobra.Command {
	var (
		out string
		q   registry.Query
	)
	cmd := &cobra.Command{
		Use:       "export <csv|pdf|xml>",
		Short:     "Exportar el registro filtrado",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "pdf", "xml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				file *dto.ExportFile
				err  error
			)
			if format := strings.ToLower(args[0]); format == "csv" {
				file, err = services.Export.CSV(cmd.Context(), q)
			} else {
				file, err = services.Export.Report(cmd.Context(), format, q)
			}
			if err != nil {
				return err
			}
			if out == "" {
				out = file.Filename
			}
			if err := os.WriteFile(out, file.Body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			pterm.Success.Printf("%s (%d bytes)\n", out, len(file.Body))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "output", "o", "", "archivo destino (por defecto SubGuard_Export_YYYY-MM-DD.<formato>)")
	f.StringVar(&q.View, "view", "", "vista")
	f.StringVar(&q.Search, "search", "", "búsqueda")
	f.StringVar(&q.Status, "status", "", "estado o All")
	f.StringVar(&q.Department, "department", "", "departamento o All")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <archivo.xml>",
		Short: "Reemplazar el registro con un export XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("leer %s: %w", args[0], err)
			}
			assets, err := xmlreport.Decode(data)
			if err != nil {
				return err
			}
			if err := services.Assets.Replace(cmd.Context(), cliActor, assets); err != nil {
				return err
			}
			pterm.Success.Printf("%d activos importados\n", len(assets))
			return nil
		},
	}
}

func newRenewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renew <asset-id>",
		Short: "Renovación rápida: adelanta la fecha un ciclo de facturación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := services.Assets.QuickRenew(cmd.Context(), cliActor, args[0])
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s renovado hasta %s\n", a.Name, a.NextRenewal)
			return nil
		},
	}
}

func newDecideCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "decide <request-id> <approve|reject>",
		Short:     "Aprobar o rechazar una solicitud",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"approve", "reject"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var outcome entity.RequestStatus
			switch strings.ToLower(args[1]) {
			case "approve":
				outcome = entity.RequestApproved
			case "reject":
				outcome = entity.RequestRejected
			default:
				return fmt.Errorf("decisión %q: use approve o reject", args[1])
			}
			req, asset, err := services.Requests.Decide(cmd.Context(), cliActor, args[0], outcome)
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s: %s\n", req.Item, req.Status)
			if asset != nil {
				pterm.Info.Printf("activo registrado con ID %s\n", asset.ID)
			}
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "seed",
		Aliases: []string{"reset"},
		Short:   "Restaurar el registro de demostración",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := storage.SeedAssets()
			if err := services.Assets.Replace(cmd.Context(), cliActor, seed); err != nil {
				return err
			}
			pterm.Success.Printf("registro restaurado (%d activos)\n", len(seed))
			return nil
		},
	}
}

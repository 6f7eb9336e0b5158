package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/pkg/money"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Indicadores del dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := services.Config.Get(ctx)
			if err != nil {
				return err
			}
			s, err := services.Dashboard.Stats(ctx)
			if err != nil {
				return err
			}
			pending, err := services.Requests.PendingCount(ctx)
			if err != nil {
				return err
			}

			return pterm.DefaultTable.
				WithHasHeader(true).
				WithBoxed(false).
				WithData(pterm.TableData{
					{"Indicador", "Valor"},
					{"Total Asset Value", money.Format(s.TotalValue, cfg.Currency)},
					{"Monthly Burn", money.Format(s.MonthlyBurn, cfg.Currency)},
					{"License Spend", money.Format(s.LicenseSpend, cfg.Currency)},
					{"Waste Potential", money.Format(s.WastePotential, cfg.Currency)},
					{"Upcoming Renewals", strconv.Itoa(s.UpcomingRenewals)},
					{"High Risk", strconv.Itoa(s.HighRiskCount)},
					{"Active Hardware", strconv.Itoa(s.HardwareCount)},
					{"Pending Requests", strconv.Itoa(pending)},
				}).
				Render()
		},
	}
}

func newAssetsCmd() *cobra.Command {
	var q registry.Query
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Listar activos de una vista",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := services.Assets.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				pterm.Warning.Println("No hay activos para esos filtros.")
				return nil
			}
			rows := pterm.TableData{{"ID", "Name", "Type", "Vendor", "Amount", "Cycle", "Status", "Renewal"}}
			for _, a := range list {
				rows = append(rows, []string{
					a.ID, a.Name, string(a.Type), a.Vendor,
					money.FormatNative(a.Amount, a.Currency),
					string(a.BillingCycle), string(a.Status), renewalLabel(a),
				})
			}
			return pterm.DefaultTable.WithHasHeader(true).WithBoxed(false).WithData(rows).Render()
		},
	}
	f := cmd.Flags()
	f.StringVar(&q.View, "view", "", "overview, registry, licenses, hardware, finops, risk, calendar, vendors")
	f.StringVar(&q.Search, "search", "", "búsqueda en nombre, categoría, responsable y proveedor")
	f.StringVar(&q.Status, "status", "", "estado o All")
	f.StringVar(&q.Department, "department", "", "departamento o All")
	f.StringVar(&q.SortBy, "sort", "", "name, amount, date")
	return cmd
}

func newForecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Proyección de gasto a 12 meses frente al presupuesto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := services.Config.Get(ctx)
			if err != nil {
				return err
			}
			months, err := services.Dashboard.Projection(ctx)
			if err != nil {
				return err
			}
			rows := pterm.TableData{{"Mes", "Gasto", "Presupuesto", ""}}
			for _, m := range months {
				flag := ""
				if m.Spend.GreaterThan(m.Budget) {
					flag = pterm.Red("over budget")
				}
				rows = append(rows, []string{
					fmt.Sprintf("%s %d", m.Month, m.Year),
					money.Format(m.Spend, cfg.Currency),
					money.Format(m.Budget, cfg.Currency),
					flag,
				})
			}
			return pterm.DefaultTable.WithHasHeader(true).WithBoxed(false).WithData(rows).Render()
		},
	}
}

func renewalLabel(a entity.Asset) string {
	if a.Perpetual() {
		return "Perpetual"
	}
	return a.NextRenewal
}

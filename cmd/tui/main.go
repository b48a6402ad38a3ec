package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/frostguard/frostguard/cmd/tui/internal/view"
	"github.com/frostguard/frostguard/internal/catalog"
	catalogStore "github.com/frostguard/frostguard/internal/catalog/store"
	"github.com/frostguard/frostguard/internal/config"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/database"
	"github.com/frostguard/frostguard/internal/exchange"
	"github.com/frostguard/frostguard/internal/export"
	"github.com/frostguard/frostguard/internal/importer"
	"github.com/frostguard/frostguard/internal/maintenance"
	maintenanceStore "github.com/frostguard/frostguard/internal/maintenance/store"
	"github.com/frostguard/frostguard/internal/matching"
	matchingStore "github.com/frostguard/frostguard/internal/matching/store"
	"github.com/frostguard/frostguard/internal/payment"
	paymentStore "github.com/frostguard/frostguard/internal/payment/store"
	"github.com/frostguard/frostguard/internal/report"
	reportStore "github.com/frostguard/frostguard/internal/report/store"
)

type model struct {
	reportService      *report.Service
	maintenanceService *maintenance.Service
	paymentService     *payment.Service
	importService      *importer.Service
	exportService      *export.Service

	currentView View

	dashboardView   view.DashboardModel
	maintenanceView view.MaintenanceModel
	paymentView     view.PaymentModel
	importView      view.ImportModel
	exportView      view.ExportModel
}

type View int

const (
	ViewMenu        View = 0
	ViewDashboard   View = 1
	ViewMaintenance View = 2
	ViewPayment     View = 3
	ViewImport      View = 4
	ViewExport      View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	reporting, err := currency.ParseCode(cfg.Exchange.ReportingCurrency)
	if err != nil {
		slog.Error("invalid reporting currency", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	fallback, err := exchange.LoadFallbackRates(cfg.Exchange.FallbackFile, reporting)
	if err != nil {
		slog.Error("failed to load fallback rates", "error", err)
		os.Exit(1)
	}

	rates := exchange.NewProvider(
		exchange.NewClient(cfg.Exchange.APIURL, cfg.Exchange.APIKey, cfg.Exchange.Timeout),
		exchange.NewMemoryCache(cfg.Cache.TTL),
		reporting,
		exchange.WithFallback(fallback),
		exchange.WithRetries(cfg.Exchange.Retries),
	)

	catalogSvc := catalog.NewService(catalogStore.New(db))
	maintenanceSvc := maintenance.NewService(maintenanceStore.New(db), matching.NewService(matchingStore.New(db)), nil)
	paymentSvc := payment.NewService(paymentStore.New(db), maintenanceSvc, catalogSvc, nil)
	reportSvc := report.NewService(reportStore.New(db), currency.NewNormalizer(rates, reporting))
	impSvc := importer.NewService()
	expSvc := export.NewService(reportSvc)

	return model{
		reportService:      reportSvc,
		maintenanceService: maintenanceSvc,
		paymentService:     paymentSvc,
		importService:      impSvc,
		exportService:      expSvc,
		currentView:        ViewMenu,
		dashboardView:      view.NewDashboardModel(reportSvc),
		maintenanceView:    view.NewMaintenanceModel(maintenanceSvc),
		paymentView:        view.NewPaymentModel(paymentSvc),
		importView:         view.NewImportModel(paymentSvc, impSvc),
		exportView:         view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.reportService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewMaintenance
				m.maintenanceView = view.NewMaintenanceModel(m.maintenanceService)

				return m, m.maintenanceView.Init()
			case "3":
				m.currentView = ViewPayment
				m.paymentView = view.NewPaymentModel(m.paymentService)

				return m, m.paymentView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.paymentService, m.importService)

				return m, m.importView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewMaintenance:
		var newModel tea.Model
		newModel, cmd = m.maintenanceView.Update(msg)
		m.maintenanceView = newModel.(view.MaintenanceModel)
	case ViewPayment:
		var newModel tea.Model
		newModel, cmd = m.paymentView.Update(msg)
		m.paymentView = newModel.(view.PaymentModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Frost Guard\n\n" +
				"1. Dashboard\n" +
				"2. Maintenances\n" +
				"3. Payments\n" +
				"4. Import Payments\n" +
				"5. Export Report\n\n" +
				"Reporting currency: " + string(m.reportService.Currency()) + "\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewMaintenance:
		return m.maintenanceView.View()
	case ViewPayment:
		return m.paymentView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

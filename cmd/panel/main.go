package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "panel/internal/app"
	"panel/internal/authz"
	"panel/internal/credstore"
	"panel/internal/entities"
	"panel/internal/gateway/rest"
	"panel/internal/handlers/rest/healthcheck_head"
	"panel/internal/pkg/config"
	"panel/internal/pkg/dotenv"
	metrics_system "panel/internal/pkg/metrics"
	"panel/internal/pkg/middlewares/graceful_shutdown"
	"panel/internal/pkg/term"
	"panel/internal/service/assignment"
	"panel/internal/service/incident"
	"panel/internal/service/route"
	"panel/internal/session"
	"panel/pkg/logger"
	"panel/pkg/logger/zap_adapter"
)

const (
	httpClientTimeout = 30 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting panel")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("panel failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := credstore.New(cfg.Credentials.File)
	bus := session.NewInvalidationBus()
	httpClient := &http.Client{Timeout: httpClientTimeout}
	client := rest.New(cfg.API.BaseURL, httpClient, store, bus, log)
	terminal := term.New(os.Stdin, os.Stdout)

	app, err := application.InitializeApplication(ctx, log, client, bus, store, terminal, cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	if err := app.Probe.WaitReady(ctx); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		startMetricsServer(ctx, cfg.Metrics.Port, log)
		metrics_system.StartSystemMetricsCollector(ctx)
	}

	if restored, err := app.Sessions.Restore(); err != nil {
		log.Warn("restore session", logger.NewField("error", err))
	} else if restored != nil {
		terminal.Printf("Sesion restaurada: %s (%s)\n", restored.User.DisplayName(), restored.User.Role)
	}

	notices, unsubscribe := app.Sessions.Subscribe()
	defer unsubscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case notice := <-notices:
				terminal.Printf("\nTu sesion ha expirado (%s). Vuelve a iniciar sesion.\n", notice.Reason)
			}
		}
	}()

	return interactiveLoop(ctx, app, terminal, log)
}

// startMetricsServer exposes /metrics and /healthcheck on a local port.
func startMetricsServer(ctx context.Context, port string, log logger.Logger) {
	var isShuttingDown atomic.Bool

	router := mux.NewRouter()
	router.Use(graceful_shutdown.Middleware(&isShuttingDown, ctx))
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(&isShuttingDown)).Methods(http.MethodHead, http.MethodGet)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics server listening", logger.NewField("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", logger.NewField("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		isShuttingDown.Store(true)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("metrics server shutdown", logger.NewField("error", err))
		}
	}()
}

func interactiveLoop(ctx context.Context, app *application.Application, t *term.Terminal, log logger.Logger) error {
	for ctx.Err() == nil {
		current, authenticated := app.Sessions.Current()
		if !authenticated {
			if done := loginScreen(ctx, app, t); done {
				return nil
			}
			continue
		}

		caps := authz.Capabilities(current.User.Role)
		t.Println()
		t.Printf("LuxChile | %s (%s)\n", current.User.DisplayName(), current.User.Role)
		t.Println("  1) Panel principal")
		t.Println("  2) Asignaciones")
		t.Println("  3) Incidentes")
		t.Println("  4) Rutas")
		if caps.Has(authz.CapViewStock) {
			t.Println("  5) Stock")
		}
		t.Println("  9) Cerrar sesion")
		t.Println("  0) Salir")

		choice, err := t.Prompt("Opcion")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			showDashboard(ctx, app, t)
		case "2":
			assignmentsMenu(ctx, app, t, caps)
		case "3":
			incidentsMenu(ctx, app, t)
		case "4":
			routesMenu(ctx, app, t)
		case "5":
			if caps.Has(authz.CapViewStock) {
				stockMenu(ctx, app, t)
			}
		case "9":
			if err := app.Sessions.Logout(); err != nil {
				log.Warn("logout", logger.NewField("error", err))
			}
			t.Println("Sesion cerrada.")
		case "0":
			return nil
		}
	}
	return nil
}

// loginScreen returns true when the operator chose to quit instead.
func loginScreen(ctx context.Context, app *application.Application, t *term.Terminal) bool {
	t.Println()
	t.Println("Inicia sesion (linea vacia en usuario para salir)")

	username, err := t.Prompt("Usuario")
	if err != nil || username == "" {
		return true
	}
	password, err := t.Prompt("Contrasena")
	if err != nil {
		return true
	}

	sess, err := app.Sessions.Login(ctx, username, password)
	if err != nil {
		t.Printf("No se pudo iniciar sesion: %v\n", err)
		return false
	}
	t.Printf("Bienvenido, %s\n", sess.User.DisplayName())
	return false
}

func showDashboard(ctx context.Context, app *application.Application, t *term.Terminal) {
	if err := app.Home.Refresh(ctx); err != nil {
		t.Printf("No se pudo actualizar el panel: %v\n", err)
		return
	}

	kpi := app.Home.KPI()
	t.Println()
	t.Printf("Ordenes en transito: %d\n", kpi.OrdersInTransit)
	t.Printf("Incidentes (semana): %d\n", kpi.WeeklyIncidents)
	t.Printf("Duracion promedio:   %.0f min\n", kpi.AvgDurationMin)
	t.Printf("Cumplimiento SLA:    %s\n", kpi.SLACompliance)

	incidents := app.Home.RecentIncidents()
	t.Println("\nIncidentes recientes:")
	for _, inc := range incidents {
		t.Printf("  [%d] %s %s (%s)\n", inc.ID, inc.Type, inc.CargoID, inc.EmployeeID)
	}
	if len(incidents) == 0 {
		t.Println("  sin datos recientes")
	}

	routes := app.Home.RecentRoutes()
	t.Println("Rutas recientes:")
	for _, r := range routes {
		t.Printf("  [%d] %s -> %s, %.0f km, %s, riesgo %s\n",
			r.ID, r.OriginLabel(), r.DestinationLabel(), r.DistanceKM, r.Duration(), entities.RiskBand(r.RiskScore))
	}
	if len(routes) == 0 {
		t.Println("  sin rutas recientes")
	}

	mini := app.Mini.Items()
	t.Println("Asignaciones recientes:")
	for _, a := range mini {
		t.Printf("  [%d] %s %s -> %s (%s, %s)\n", a.ID, a.CargoID, a.Origin, a.Destination, a.Priority, a.Status)
	}
	if len(mini) == 0 {
		t.Println("  sin asignaciones recientes")
	}
}

func assignmentsMenu(ctx context.Context, app *application.Application, t *term.Terminal, caps authz.Set) {
	if err := app.Assignments.Reload(ctx); err != nil {
		t.Printf("No se pudo cargar el listado: %v\n", err)
		return
	}

	for _, a := range app.Assignments.Items() {
		t.Printf("  [%d] %s | %s | %s -> %s | %s | %s\n",
			a.ID, a.CargoID, a.EmployeeID, a.Origin, a.Destination, a.Priority, a.Status)
	}

	t.Println("  c) crear  e) editar  x) completar  d) eliminar  m) manifiesto  v) volver")
	choice, err := t.Prompt("Opcion")
	if err != nil {
		return
	}

	switch choice {
	case "c":
		if caps.Has(authz.CapCreateAssignment) {
			createAssignment(ctx, app, t)
		}
	case "e":
		if caps.Has(authz.CapEditAssignment) {
			editAssignment(ctx, app, t)
		}
	case "x":
		if id, ok := promptID(t); ok {
			reportOutcome(t, app.Assignments.Complete(ctx, id), "Asignacion completada.")
		}
	case "d":
		if caps.Has(authz.CapDeleteAssignment) {
			if id, ok := promptID(t); ok {
				reportOutcome(t, app.Assignments.Delete(ctx, id), "Asignacion eliminada.")
			}
		}
	case "m":
		path, err := app.AssignmentService.ExportManifest(ctx)
		if err != nil {
			t.Printf("No se pudo generar el manifiesto: %v\n", err)
		} else {
			t.Printf("Manifiesto generado: %s\n", path)
		}
	}
}

func createAssignment(ctx context.Context, app *application.Application, t *term.Terminal) {
	draft := entities.AssignmentDraft{}
	var err error
	if draft.CargoID, err = t.Prompt("ID de carga"); err != nil {
		return
	}
	if draft.VehicleID, err = t.Prompt("Vehiculo"); err != nil {
		return
	}
	if draft.EmployeeID, err = t.Prompt("RUT responsable"); err != nil {
		return
	}
	if draft.Origin, err = t.Prompt("Origen"); err != nil {
		return
	}
	if draft.Destination, err = t.Prompt("Destino"); err != nil {
		return
	}
	priority, err := t.Prompt("Prioridad (ALTA/MEDIA/BAJA, vacio = MEDIA)")
	if err != nil {
		return
	}
	if priority != "" {
		draft.Priority = entities.AssignmentPriority(priority)
	}
	when, err := t.Prompt("Fecha programada (RFC3339, vacio = sin fecha)")
	if err != nil {
		return
	}
	if when != "" {
		if ts, perr := time.Parse(time.RFC3339, when); perr == nil {
			draft.ScheduledAt = &ts
		} else {
			t.Println("Fecha no valida, se omite.")
		}
	}
	if draft.Notes, err = t.Prompt("Notas"); err != nil {
		return
	}

	created, err := app.Assignments.Create(ctx, draft)
	if err != nil {
		t.Printf("No se pudo crear la asignacion: %v\n", err)
		return
	}
	t.Printf("Asignacion %d creada (%s).\n", created.ID, created.CargoID)
}

func editAssignment(ctx context.Context, app *application.Application, t *term.Terminal) {
	id, ok := promptID(t)
	if !ok {
		return
	}

	modify := entities.AssignmentModify{}
	priority, err := t.Prompt("Nueva prioridad (vacio = sin cambio)")
	if err != nil {
		return
	}
	if priority != "" {
		p := entities.AssignmentPriority(priority)
		modify.Priority = &p
	}
	notes, err := t.Prompt("Nuevas notas (vacio = sin cambio)")
	if err != nil {
		return
	}
	if notes != "" {
		modify.Notes = &notes
	}

	reportOutcome(t, app.Mini.Edit(ctx, id, modify), "Asignacion actualizada.")
}

func incidentsMenu(ctx context.Context, app *application.Application, t *term.Terminal) {
	if err := app.Incidents.Reload(ctx); err != nil {
		t.Printf("No se pudo cargar el historial: %v\n", err)
	}
	for _, inc := range app.Incidents.Items() {
		t.Printf("  [%d] %s | %s | %s | %s\n", inc.ID, inc.Type, inc.CargoID, inc.EmployeeID, inc.Description)
	}

	t.Println("  r) registrar  d) eliminar  v) volver")
	choice, err := t.Prompt("Opcion")
	if err != nil {
		return
	}

	switch choice {
	case "r":
		registerIncident(ctx, app, t)
	case "d":
		if id, ok := promptID(t); ok {
			reportOutcome(t, app.Incidents.Delete(ctx, id), "Incidente eliminado.")
		}
	}
}

func registerIncident(ctx context.Context, app *application.Application, t *term.Terminal) {
	draft := entities.IncidentDraft{}
	var err error
	if draft.CargoID, err = t.Prompt("ID de carga"); err != nil {
		return
	}
	if draft.VehicleID, err = t.Prompt("Vehiculo"); err != nil {
		return
	}
	if draft.EmployeeID, err = t.Prompt("RUT responsable"); err != nil {
		return
	}
	kind, err := t.Prompt("Tipo (DESVIO_RUTA/DETENCION_NO_PROGRAMADA/ACCIDENTE/ROBO/OTRO)")
	if err != nil {
		return
	}
	draft.Type = entities.IncidentType(kind)
	if draft.Description, err = t.Prompt("Descripcion"); err != nil {
		return
	}
	if draft.Address, err = t.Prompt("Direccion"); err != nil {
		return
	}

	created, err := app.Incidents.Register(ctx, draft)
	if err != nil {
		t.Printf("No se pudo registrar el incidente: %v\n", err)
		return
	}
	t.Printf("Incidente %d registrado.\n", created.ID)
}

func routesMenu(ctx context.Context, app *application.Application, t *term.Terminal) {
	if err := app.Routes.Reload(ctx); err != nil {
		t.Printf("No se pudo cargar el historial: %v\n", err)
	}
	for _, r := range app.Routes.Items() {
		t.Printf("  [%d] %s -> %s | %.0f km | %s | riesgo %s\n",
			r.ID, r.OriginLabel(), r.DestinationLabel(), r.DistanceKM, r.Duration(), entities.RiskBand(r.RiskScore))
	}

	t.Println("  p) planificar  d) eliminar  v) volver")
	choice, err := t.Prompt("Opcion")
	if err != nil {
		return
	}

	switch choice {
	case "p":
		origin, err := t.Prompt("Origen")
		if err != nil {
			return
		}
		destination, err := t.Prompt("Destino")
		if err != nil {
			return
		}
		plan, err := app.Routes.Plan(ctx, origin, destination)
		if err != nil {
			t.Printf("No se pudo calcular la ruta: %v\n", err)
			return
		}
		t.Printf("Distancia: %.1f km | Duracion: %s | Peajes: %.0f CLP | Riesgo: %s (%.2f)\n",
			plan.DistanceKM, plan.Duration(), plan.TollCostCLP, entities.RiskBand(plan.RiskScore), plan.RiskScore)
	case "d":
		if id, ok := promptID(t); ok {
			reportOutcome(t, app.Routes.Delete(ctx, id), "Ruta eliminada del historial.")
		}
	}
}

func stockMenu(ctx context.Context, app *application.Application, t *term.Terminal) {
	t.Println("  c) consultar SKU  l) listado  e) exportar CSV  v) volver")
	choice, err := t.Prompt("Opcion")
	if err != nil {
		return
	}

	switch choice {
	case "c":
		sku, err := t.Prompt("SKU")
		if err != nil {
			return
		}
		report, err := app.Stock.Lookup(ctx, sku)
		if err != nil {
			t.Printf("No se pudo obtener el stock: %v\n", err)
			return
		}
		for _, lvl := range report.Inventory {
			t.Printf("  %s: %d (min %d) [%s]\n", lvl.Warehouse, lvl.Stock, lvl.MinStock, lvl.State)
		}
		t.Printf("Total: %d | Bodegas bajo minimo: %d\n", report.TotalStock(), report.LowStockCount())
	case "l":
		warehouse, err := t.Prompt("Bodega (vacio = todas)")
		if err != nil {
			return
		}
		lowRaw, err := t.Prompt("Solo bajo stock? (y/N)")
		if err != nil {
			return
		}
		search, err := t.Prompt("Buscar (vacio = todo)")
		if err != nil {
			return
		}
		app.Stock.SetFilter(entities.StockFilter{
			Warehouse: warehouse,
			LowOnly:   lowRaw == "y" || lowRaw == "yes",
			Search:    search,
		})
		if err := app.Stock.Reload(ctx); err != nil {
			t.Printf("No se pudo cargar el listado: %v\n", err)
			return
		}
		listing, _ := app.Stock.Listing()
		for _, lvl := range listing.Items {
			t.Printf("  %s | %s: %d (min %d) [%s]\n", lvl.SKU, lvl.Warehouse, lvl.Stock, lvl.MinStock, lvl.State)
		}
		t.Printf("Items: %d | Stock total: %d | Bajo minimo: %d\n",
			listing.TotalItems, listing.TotalStock, listing.LowItems)
	case "e":
		if err := app.Stock.ExportCSV(os.Stdout); err != nil {
			t.Printf("No se pudo exportar: %v\n", err)
		}
	}
}

func promptID(t *term.Terminal) (int64, bool) {
	raw, err := t.Prompt("ID")
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		t.Println("ID no valido.")
		return 0, false
	}
	return id, true
}

func reportOutcome(t *term.Terminal, err error, okMsg string) {
	switch {
	case err == nil:
		t.Println(okMsg)
	case errors.Is(err, assignment.ErrConfirmationDeclined),
		errors.Is(err, incident.ErrConfirmationDeclined),
		errors.Is(err, route.ErrConfirmationDeclined):
		t.Println("Operacion cancelada.")
	default:
		t.Printf("Error: %v\n", err)
	}
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/setraniainabruno/gestion-chambre-app/internal/application"
	"github.com/setraniainabruno/gestion-chambre-app/internal/config"
	"github.com/setraniainabruno/gestion-chambre-app/internal/email"
	"github.com/setraniainabruno/gestion-chambre-app/internal/infrastructure/apiclient"
	handlers "github.com/setraniainabruno/gestion-chambre-app/internal/interfaces/http"
	"github.com/setraniainabruno/gestion-chambre-app/internal/scheduler"
	services "github.com/setraniainabruno/gestion-chambre-app/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erreur de chargement de la configuration: %v", err)
	}

	// Hotel API client and repositories
	api := apiclient.New(cfg.HotelAPIURL, cfg.HotelAPITimeout, cfg.HotelAPIToken)
	chambreRepo := apiclient.NewChambreRepository(api)
	reservationRepo := apiclient.NewReservationRepository(api)
	clientRepo := apiclient.NewClientRepository(api)
	utilisateurRepo := apiclient.NewUtilisateurRepository(api)

	// Email Client
	var emailClient *email.Client
	if cfg.SMTPHost != "" {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
			cfg.SummaryEmail,
		)
		if err != nil {
			log.Printf("Warning: initialisation du client email échouée: %v", err)
			emailClient = nil // Continuer sans email
		}
	}

	// Report storage, optional
	var uploader application.ReportUploader
	if cfg.S3Bucket != "" {
		storage, err := services.NewReportStorage(cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			log.Printf("Warning: initialisation du stockage de rapports échouée: %v", err)
		} else {
			uploader = storage
		}
	}

	// Chambres
	chambreService := application.NewChambreService(chambreRepo)
	chambreHandler := handlers.NewChambreHandler(chambreService)

	// Réservations
	reservationService := application.NewReservationService(reservationRepo, chambreRepo, clientRepo)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// Clients
	clientService := application.NewClientService(clientRepo, reservationRepo)
	clientHandler := handlers.NewClientHandler(clientService)

	// Tableau de bord
	dashboardService := application.NewDashboardService(reservationRepo, chambreRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Rapports
	reportService := application.NewReportService(reservationRepo, chambreRepo, uploader)
	reportHandler := handlers.NewReportHandler(reportService)

	// Sessions
	sessionService := application.NewSessionService(utilisateurRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Dérivation des statuts
	var notifier application.DerivationNotifier
	if emailClient != nil && cfg.SummaryEmail != "" {
		notifier = emailClient
	}
	derivationService := application.NewStatusDerivationService(reservationRepo, chambreRepo, notifier)
	derivationHandler := handlers.NewDerivationHandler(derivationService)

	statusScheduler := scheduler.NewStatusScheduler(derivationService)
	if cfg.SchedulerEnabled {
		go statusScheduler.Start()
		defer statusScheduler.Stop()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length,Content-Disposition",
		MaxAge:           86400,
	}))

	// Authentification
	auth := app.Group("/auth")
	auth.Post("/login", sessionHandler.Login)
	auth.Post("/logout", sessionHandler.Logout)

	apiGroup := app.Group("/api")

	// Routes des chambres
	chambres := apiGroup.Group("/chambres")
	chambres.Get("/", chambreHandler.GetAll)
	chambres.Get("/prochain-numero", chambreHandler.ProchainNumero)
	chambres.Get("/:id", chambreHandler.GetByID)
	chambres.Post("/", chambreHandler.Create)
	chambres.Put("/:id", chambreHandler.Update)
	chambres.Put("/:id/statut", chambreHandler.UpdateStatut)
	chambres.Delete("/:id", chambreHandler.Delete)

	// Routes des réservations
	reservations := apiGroup.Group("/reservations")
	reservations.Get("/", reservationHandler.GetAll)
	reservations.Get("/count", reservationHandler.Count)
	reservations.Get("/nombre-client/:clientId", reservationHandler.CountByClient)
	reservations.Get("/:id", reservationHandler.GetByID)
	reservations.Post("/", reservationHandler.Create)
	reservations.Put("/:id", reservationHandler.Update)
	reservations.Put("/:id/statut", reservationHandler.UpdateStatut)
	reservations.Post("/:id/confirmer", reservationHandler.Confirmer)
	reservations.Post("/:id/annuler", reservationHandler.Annuler)
	reservations.Delete("/:id", reservationHandler.Delete)

	// Routes des clients
	clients := apiGroup.Group("/clients")
	clients.Get("/", clientHandler.GetAll)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Tableau de bord et rapports
	apiGroup.Get("/dashboard/stats", dashboardHandler.GetStats)
	rapports := apiGroup.Group("/rapports")
	rapports.Get("/", reportHandler.GetReport)
	rapports.Get("/export", reportHandler.Export)
	rapports.Post("/archiver", reportHandler.Archiver)

	// Dérivation des statuts à la demande
	apiGroup.Post("/statuts/derivation", derivationHandler.RunPass)

	// Compte utilisateur
	utilisateurs := apiGroup.Group("/utilisateurs")
	utilisateurs.Get("/:id", sessionHandler.GetUtilisateur)
	utilisateurs.Put("/:id", sessionHandler.UpdateUtilisateur)
	utilisateurs.Put("/:id/mot-de-passe", sessionHandler.UpdateMotDePasse)

	log.Printf("Serveur démarré sur le port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erreur au démarrage du serveur: %v", err)
	}
}

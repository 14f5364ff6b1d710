package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"tatuagenda/internal/api"
	"tatuagenda/internal/config"
	"tatuagenda/internal/repository"
	"tatuagenda/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := googleClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build Google API client: %v", err)
	}

	calendarSvc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		log.Fatalf("Failed to build calendar service: %v", err)
	}
	calendarRepo := repository.NewCalendarRepository(calendarSvc, cfg.CalendarID, cfg.Location)

	var ledger service.LedgerAPI
	if cfg.LedgerSpreadsheetID != "" {
		sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			log.Fatalf("Failed to build sheets service: %v", err)
		}
		ledger = repository.NewLedgerRepository(sheetsSvc, cfg.LedgerSpreadsheetID, cfg.LedgerSheetRange)
	} else {
		log.Println("LEDGER_SPREADSHEET_ID not set, ledger mirroring disabled")
	}

	var files service.FileStoreAPI
	if cfg.DriveFolderID != "" {
		driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			log.Fatalf("Failed to build drive service: %v", err)
		}
		files = repository.NewDriveRepository(driveSvc, cfg.DriveFolderID)
	} else {
		log.Println("DRIVE_FOLDER_ID not set, reference image uploads disabled")
	}

	notifier := service.NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)
	phones := service.NewTwilioPhoneValidator(cfg.TwilioAccountSID, cfg.TwilioAuthToken)

	availabilitySvc := service.NewAvailabilityService(calendarRepo, cfg)
	bookingSvc := service.NewBookingService(calendarRepo, ledger, files, notifier, phones, cfg)
	agendaSvc := service.NewAgendaService(calendarRepo, notifier, cfg)

	if cfg.DigestCronSpec != "" && cfg.OperatorEmail != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.DigestCronSpec, func() {
			if err := agendaSvc.SendDailyDigest(context.Background()); err != nil {
				log.Printf("Agenda digest failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid DIGEST_CRON_SPEC %q: %v", cfg.DigestCronSpec, err)
		}
		c.Start()
	}

	handler := api.NewBookingHandler(availabilitySvc, bookingSvc)

	r := mux.NewRouter()
	r.HandleFunc("/api/slots", handler.GetAvailableSlots).Methods("GET")
	r.HandleFunc("/api/bookings", handler.CreateBooking).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(r)))
}

// googleClient builds one authorized HTTP client from the OAuth client
// credentials and the long-lived token produced by the one-time
// authorization flow. All three Google services share it.
func googleClient(ctx context.Context, cfg *config.Config) (*http.Client, error) {
	credBytes, err := os.ReadFile(cfg.GoogleCredentialsFile)
	if err != nil {
		return nil, err
	}
	oauthCfg, err := google.ConfigFromJSON(credBytes,
		calendar.CalendarScope,
		sheets.SpreadsheetsScope,
		drive.DriveFileScope,
	)
	if err != nil {
		return nil, err
	}

	tokenBytes, err := os.ReadFile(cfg.GoogleTokenFile)
	if err != nil {
		return nil, err
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(tokenBytes, token); err != nil {
		return nil, err
	}

	return oauthCfg.Client(ctx, token), nil
}

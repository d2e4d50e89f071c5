package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	db "github.com/VeriPay/VeriPay-Backend/db"
	"github.com/VeriPay/VeriPay-Backend/models"
	"github.com/VeriPay/VeriPay-Backend/providers"
	"github.com/VeriPay/VeriPay-Backend/providers/gateway"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services"
	"github.com/VeriPay/VeriPay-Backend/services/monitoring/logging"
	"github.com/VeriPay/VeriPay-Backend/services/pricing"
	"github.com/VeriPay/VeriPay-Backend/services/provisioning"
	"github.com/VeriPay/VeriPay-Backend/services/verification"
	"github.com/VeriPay/VeriPay-Backend/services/wallet"
	"github.com/VeriPay/VeriPay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router       *gin.Engine
	store        *db.Store
	config       *utils.Config
	logger       *logging.Logger
	providers    *providers.ProviderService
	verification *verification.VerificationService
	wallets      *wallet.WalletService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	// Identity provider chain, in priority order
	var premblyConfig identity.PremblyConfig
	var dojahConfig identity.DojahConfig
	var qoreidConfig identity.QoreIDConfig
	if err := utils.LoadCustomConfig(envPath, &premblyConfig); err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}
	if err := utils.LoadCustomConfig(envPath, &dojahConfig); err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}
	if err := utils.LoadCustomConfig(envPath, &qoreidConfig); err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	prembly := identity.NewPremblyProvider(&premblyConfig, l)
	dojah := identity.NewDojahProvider(&dojahConfig, l)
	qoreid := identity.NewQoreIDProvider(&qoreidConfig, l)

	orchestrator := verification.NewOrchestrator(l, prembly, dojah, qoreid)

	// Payment gateway chain for virtual account provisioning
	var paystackConfig gateway.PaystackConfig
	var flutterwaveConfig gateway.FlutterwaveConfig
	if err := utils.LoadCustomConfig(envPath, &paystackConfig); err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}
	if err := utils.LoadCustomConfig(envPath, &flutterwaveConfig); err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	paystack := gateway.NewPaystackProvider(&paystackConfig, l)
	flutterwave := gateway.NewFlutterwaveProvider(&flutterwaveConfig, l)

	provisioner := provisioning.NewProvisioningService(store, l, paystack, flutterwave)

	registry := providers.NewProviderService()
	for _, p := range []providers.Provider{prembly, dojah, qoreid, paystack, flutterwave} {
		registry.AddProvider(p)
	}

	// Redis is optional; pricing falls back to the DB and defaults
	redisService, err := services.NewRedisService(&services.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	var priceCache pricing.PriceCache
	if err != nil {
		l.Error("Unable to connect to Redis, pricing cache disabled", err)
	} else {
		priceCache = redisService
	}

	walletService := wallet.NewWalletService(store, l)
	pricingService := pricing.NewPricingService(store, priceCache, l)
	verificationService := verification.NewVerificationService(
		store, orchestrator, walletService, pricingService, provisioner, l,
	)

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:       g,
		store:        store,
		config:       c,
		logger:       l,
		providers:    registry,
		verification: verificationService,
		wallets:      walletService,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to VeriPay!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	s.router.GET("/health", s.health)

	/// Register Object Routers Below
	Verification{}.router(s)
	Wallet{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}

func (s *Server) health(ctx *gin.Context) {
	dbStatus := "up"
	code := http.StatusOK
	if err := s.store.DB.PingContext(ctx.Request.Context()); err != nil {
		s.logger.Error("Database health check failed", err)
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	known := []string{providers.Prembly, providers.Dojah, providers.QoreID, providers.Paystack, providers.Flutterwave}
	registered := make([]string, 0, len(known))
	for _, name := range known {
		if _, ok := s.providers.GetProvider(name); ok {
			registered = append(registered, name)
		}
	}

	ctx.JSON(code, models.NewSuccess("health", gin.H{
		"database":  dbStatus,
		"providers": registered,
	}))
}

package bootstrap

import (
	"context"
	"log"

	"worksuite-be/internal/config"
	"worksuite-be/internal/controller"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/pkg/mailer"
	"worksuite-be/internal/repository/implementation"
	"worksuite-be/internal/repository/memory"
	"worksuite-be/internal/repository/unitofwork"
	"worksuite-be/internal/service"
	adminSetting "worksuite-be/pkg/admin/setting"
	"worksuite-be/pkg/gateway"

	pktNats "worksuite-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	PlanController    controller.IPlanController
	BillingController controller.IBillingController
	WebhookController controller.IWebhookController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Order locking disabled", err)
		// A nil client skips the per-order lock instead of failing every callback.
		rdb = nil
	}

	// 3. Settings store (cached) and payment gateways
	settingCache := memory.NewSettingCache(implementation.NewSettingRepository(db))
	settingManager := adminSetting.NewManager(settingCache)
	registry := buildGatewayRegistry(context.Background(), settingManager, cfg)

	// 4. Services
	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	authService := service.NewAuthService(uowFactory, eventPublisher)
	planService := service.NewPlanService(uowFactory)
	billingService := service.NewBillingService(uowFactory, registry, eventPublisher, rdb, sysLogger)
	adminService := service.NewAdminService(uowFactory, settingManager, sysLogger)

	consumerService := service.NewConsumerService(pubSub, cfg.App.EmailTopic, emailService)
	notifService := service.NewNotificationService(uowFactory, natsSub, pubSub, cfg.App.EmailTopic, sysLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		PlanController:    controller.NewPlanController(planService),
		BillingController: controller.NewBillingController(billingService),
		WebhookController: controller.NewWebhookController(billingService, sysLogger),
		AdminController:   controller.NewAdminController(adminService, billingService),

		ConsumerService:     consumerService,
		NotificationService: notifService,
	}
}

// buildGatewayRegistry assembles the enabled payment adapters. Credentials
// come from the admin settings store; environment values seed fresh installs
// where the settings rows do not exist yet.
func buildGatewayRegistry(ctx context.Context, settings *adminSetting.Manager, cfg *config.Config) *gateway.Registry {
	registry := gateway.NewRegistry()

	lookup := func(method string) map[string]string {
		values, err := settings.GetGroup(ctx, adminSetting.PaymentGroupPrefix+method)
		if err != nil {
			log.Printf("[WARN] Could not read %s settings: %v", method, err)
			return map[string]string{}
		}
		return values
	}
	enabled := func(values map[string]string, fallback bool) bool {
		if v, ok := values[adminSetting.KeyEnabled]; ok {
			return v == "true"
		}
		return fallback
	}
	pick := func(values map[string]string, key, fallback string) string {
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	if values := lookup("midtrans"); enabled(values, cfg.Gateways.Midtrans.Enabled) {
		registry.Register(gateway.NewMidtrans(gateway.MidtransCredentials{
			Mode:      gateway.Mode(pick(values, adminSetting.KeyMode, cfg.Gateways.Midtrans.Mode)),
			ServerKey: pick(values, "server_key", cfg.Gateways.Midtrans.ServerKey),
			FinishURL: cfg.App.ClientURL + "/billing?payment=finished",
		}))
	}

	if values := lookup("stripe"); enabled(values, cfg.Gateways.Stripe.Enabled) {
		registry.Register(gateway.NewStripe(gateway.StripeCredentials{
			Mode:       gateway.Mode(pick(values, adminSetting.KeyMode, cfg.Gateways.Stripe.Mode)),
			SecretKey:  pick(values, "secret_key", cfg.Gateways.Stripe.SecretKey),
			SuccessURL: cfg.App.ClientURL + "/billing?payment=success&session_id={CHECKOUT_SESSION_ID}",
			CancelURL:  cfg.App.ClientURL + "/billing?payment=cancelled",
		}))
	}

	if values := lookup("razorpay"); enabled(values, cfg.Gateways.Razorpay.Enabled) {
		registry.Register(gateway.NewRazorpay(gateway.RazorpayCredentials{
			Mode:      gateway.Mode(pick(values, adminSetting.KeyMode, cfg.Gateways.Razorpay.Mode)),
			KeyId:     pick(values, "key_id", cfg.Gateways.Razorpay.KeyId),
			KeySecret: pick(values, "key_secret", cfg.Gateways.Razorpay.KeySecret),
		}))
	}

	if values := lookup("banktransfer"); enabled(values, false) {
		registry.Register(gateway.NewBankTransfer(gateway.BankTransferDetails{
			BankName:      values["bank_name"],
			AccountName:   values["account_name"],
			AccountNumber: values["account_number"],
			Instructions:  values["instructions"],
		}))
	}

	log.Printf("[INFO] Payment methods enabled: %v", registry.Names())
	return registry
}

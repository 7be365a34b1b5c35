package main

import (
	"log"
	"os"

	"worksuite-be/internal/model"
	"worksuite-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedCurrencies(db)
	seedPlans(db)
	seedSettings(db)
	seedSuperAdmin(db)

	log.Println("✅ Seeding completed")
}

func seedCurrencies(db *gorm.DB) {
	currencies := []model.Currency{
		{
			Id: uuid.New(), Name: "US Dollar", Code: "USD", Symbol: "$",
			DecimalPlaces: 2, Position: "before", ThousandsSep: ",", DecimalSep: ".",
			IsDefault: true,
		},
		{
			Id: uuid.New(), Name: "Euro", Code: "EUR", Symbol: "€",
			DecimalPlaces: 2, Position: "after", ThousandsSep: ".", DecimalSep: ",",
		},
		{
			Id: uuid.New(), Name: "Indian Rupee", Code: "INR", Symbol: "₹",
			DecimalPlaces: 2, Position: "before", ThousandsSep: ",", DecimalSep: ".",
		},
	}

	for _, c := range currencies {
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&c)
		if res.Error != nil {
			log.Printf("Warn: seed currency %s: %v", c.Code, res.Error)
		}
	}
	log.Println("Seeded currencies")
}

func seedPlans(db *gorm.DB) {
	trialDays := 14
	plans := []model.Plan{
		{
			Id: uuid.New(), Name: "Free", Description: "Get started with the basics",
			Price: 0, MaxUsers: 3, MaxEmployees: 5, StorageLimit: 512,
			IsPlanEnable: true, IsDefault: true, SortOrder: 0,
		},
		{
			Id: uuid.New(), Name: "Starter", Description: "For growing teams",
			Price: 29, MaxUsers: 10, MaxEmployees: 25, StorageLimit: 5120,
			IsTrial: true, TrialDay: trialDays,
			IsPlanEnable: true, SortOrder: 1,
		},
		{
			Id: uuid.New(), Name: "Business", Description: "Everything unlimited",
			Price: 99, MaxUsers: -1, MaxEmployees: -1, StorageLimit: 51200,
			EnableChatGPT: true, IsTrial: true, TrialDay: trialDays,
			IsPlanEnable: true, SortOrder: 2,
		},
	}

	for _, p := range plans {
		var count int64
		db.Model(&model.Plan{}).Where("name = ?", p.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Warn: seed plan %s: %v", p.Name, err)
		}
	}
	log.Println("Seeded plans")
}

func seedSettings(db *gorm.DB) {
	settings := []model.Setting{
		{Id: uuid.New(), Group: "payment.banktransfer", Key: "enabled", Value: "true"},
		{Id: uuid.New(), Group: "payment.banktransfer", Key: "bank_name", Value: "First National"},
		{Id: uuid.New(), Group: "payment.banktransfer", Key: "account_name", Value: "WorkSuite Ltd"},
		{Id: uuid.New(), Group: "payment.banktransfer", Key: "account_number", Value: "0000000000"},
		{Id: uuid.New(), Group: "payment.stripe", Key: "enabled", Value: "false"},
		{Id: uuid.New(), Group: "payment.razorpay", Key: "enabled", Value: "false"},
		{Id: uuid.New(), Group: "payment.midtrans", Key: "enabled", Value: "false"},
	}

	for _, s := range settings {
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_group"}, {Name: "setting_key"}},
			DoNothing: true,
		}).Create(&s)
		if res.Error != nil {
			log.Printf("Warn: seed setting %s/%s: %v", s.Group, s.Key, res.Error)
		}
	}
	log.Println("Seeded payment settings")
}

func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SUPERADMIN_EMAIL")
	if email == "" {
		email = "admin@worksuite.local"
	}
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("Warn: SUPERADMIN_PASSWORD not set, using the default")
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: hash superadmin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Platform Admin",
		Role:         "superadmin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: seed superadmin: %v", err)
	}
	log.Printf("Seeded super admin %s", email)
}

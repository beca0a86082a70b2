package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dev-bomo/cuvinte-banatene/internal/config"
	"github.com/dev-bomo/cuvinte-banatene/internal/models"
)

// sampleWords is the starter set of Banat-dialect entries loaded into an
// empty dictionary.
var sampleWords = []models.Word{
	{
		Word:             "băiat",
		Definition:       "Tânăr de sex masculin, copil sau adolescent.",
		ShortDescription: "Tânăr de sex masculin",
		Category:         "Persoane",
		Origin:           "Română",
		Examples:         models.StringList{"Băiatul merge la școală.", "E un băiat bun."},
		Pronunciation:    "bă-iat",
	},
	{
		Word:             "casă",
		Definition:       "Clădire destinată locuinței unei familii sau a unei persoane.",
		ShortDescription: "Clădire pentru locuit",
		Category:         "Locuințe",
		Origin:           "Română",
		Examples:         models.StringList{"Casa noastră este mare.", "Să mergem acasă."},
		Pronunciation:    "ca-să",
	},
	{
		Word:             "mamă",
		Definition:       "Femeie care a născut un copil sau care îl crește.",
		ShortDescription: "Femeie care a născut un copil",
		Category:         "Familie",
		Origin:           "Română",
		Examples:         models.StringList{"Mama gătește mâncare.", "Îmi iubesc mama."},
		Pronunciation:    "ma-mă",
	},
	{
		Word:             "duba",
		Definition:       "Vehicul închis pentru transportul persoanelor sau al mărfurilor.",
		ShortDescription: "Vehicul de transport",
		Category:         "Transport",
		Origin:           "Banat",
		Examples:         models.StringList{"A venit duba cu pâine."},
		Pronunciation:    "du-ba",
	},
	{
		Word:             "firez",
		Definition:       "Unealtă cu lamă dințată folosită la tăiatul lemnului; ferăstrău.",
		ShortDescription: "Ferăstrău",
		Category:         "Unelte",
		Origin:           "Banat",
		Examples:         models.StringList{"Taie creanga cu firezul."},
		Pronunciation:    "fi-rez",
	},
	{
		Word:             "paori",
		Definition:       "Țărani gospodari din Banat, cunoscuți pentru hărnicie.",
		ShortDescription: "Țărani gospodari",
		Category:         "Persoane",
		Origin:           "Banat",
		Examples:         models.StringList{"Paorii au lucrat pământul din zori."},
		Pronunciation:    "pa-ori",
	},
}

// Seed populates an empty database with the sample words and, when an admin
// password is configured, a verified admin account. Existing rows are never
// touched.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedWords {
		if err := seedWords(db); err != nil {
			return err
		}
	}
	if cfg.AdminPassword != "" {
		if err := seedAdmin(db, cfg); err != nil {
			return err
		}
	}
	return nil
}

func seedWords(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Word{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleWords {
		word := sampleWords[i]
		word.ID = uuid.NewString()
		if err := db.Create(&word).Error; err != nil {
			return fmt.Errorf("failed to seed word %q: %w", word.Word, err)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:            uuid.NewString(),
		Username:      cfg.AdminUsername,
		Email:         cfg.AdminEmail,
		PasswordHash:  string(hash),
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

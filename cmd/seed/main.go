package main

import (
	"fmt"
	"log"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and loads a small demo dataset: one pharmacy, one
// laboratory, their owners, a client account and a handful of products.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MEDISEARCH - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.RefreshSession{},
		&models.PasswordReset{},
		&models.Product{},
		&models.Chat{},
		&models.Message{},
		&models.Comment{},
		&models.Reply{},
		&models.FavoriteProduct{},
		&models.FavoriteCompany{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	var existing models.Company
	if err := config.Gorm.Where("email = ?", "contacto@farmaciacentral.do").First(&existing).Error; err == nil {
		fmt.Println("❌ Demo data already seeded, nothing to do")
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}

	pharmacy := models.Company{
		Ceo:          "María Rodríguez",
		Name:         "Farmacia Central",
		Type:         models.CompanyTypePharmacy,
		Province:     "Santo Domingo",
		Municipality: "Santo Domingo Este",
		Address:      "Av. San Vicente de Paúl 45",
		Email:        "contacto@farmaciacentral.do",
		Phone:        "809-555-0101",
		Active:       true,
	}
	laboratory := models.Company{
		Ceo:          "José Peralta",
		Name:         "Laboratorios Caribe",
		Type:         models.CompanyTypeLaboratory,
		Province:     "Santiago",
		Municipality: "Santiago de los Caballeros",
		Address:      "Calle del Sol 120",
		Email:        "ventas@labcaribe.do",
		Phone:        "809-555-0202",
		Active:       true,
	}

	err := config.Gorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pharmacy).Error; err != nil {
			return err
		}
		if err := tx.Create(&laboratory).Error; err != nil {
			return err
		}

		users := []models.User{
			{
				FirstName:    "María",
				LastName:     "Rodríguez",
				Email:        "maria@farmaciacentral.do",
				PasswordHash: mustHash("farmacia123"),
				Role:         models.RoleSuperAdmin,
				Phone:        "809-555-0101",
				Province:     pharmacy.Province,
				Municipality: pharmacy.Municipality,
				Address:      pharmacy.Address,
				CompanyID:    &pharmacy.ID,
			},
			{
				FirstName:    "José",
				LastName:     "Peralta",
				Email:        "jose@labcaribe.do",
				PasswordHash: mustHash("laboratorio123"),
				Role:         models.RoleSuperAdmin,
				Phone:        "809-555-0202",
				Province:     laboratory.Province,
				Municipality: laboratory.Municipality,
				Address:      laboratory.Address,
				CompanyID:    &laboratory.ID,
			},
			{
				FirstName:    "Pedro",
				LastName:     "Gómez",
				Email:        "pedro@example.com",
				PasswordHash: mustHash("cliente123"),
				Role:         models.RoleClient,
				Phone:        "809-555-0303",
				Province:     "Santo Domingo",
				Municipality: "Santo Domingo Norte",
				Address:      "Calle Primera 8",
			},
		}
		for i := range users {
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}

		products := []models.Product{
			{
				Name:           "Paracetamol 500mg",
				Description:    "Analgésico y antipirético de uso general",
				Classification: "Analgésico",
				Categories:     models.StringList{"Tabletas"},
				Price:          150,
				Quantity:       200,
				CompanyID:      pharmacy.ID,
			},
			{
				Name:           "Ibuprofeno Pediátrico",
				Description:    "Suspensión oral para niños",
				Classification: "Analgésico",
				Categories:     models.StringList{"Jarabe"},
				Price:          280,
				Quantity:       80,
				CompanyID:      pharmacy.ID,
			},
			{
				Name:           "Amoxicilina 875mg",
				Description:    "Antibiótico de amplio espectro, lote mayorista",
				Classification: "Antibiótico",
				Categories:     models.StringList{"Tabletas"},
				Price:          950,
				Quantity:       500,
				CompanyID:      laboratory.ID,
			},
			{
				Name:           "Salbutamol Inhalador",
				Description:    "Broncodilatador de rescate",
				Classification: "Respiratorio",
				Categories:     models.StringList{"Inhalador"},
				Price:          620,
				Quantity:       150,
				CompanyID:      laboratory.ID,
			},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Data Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Pharmacy:   %s (%s)\n", pharmacy.Name, pharmacy.Email)
	fmt.Printf("Laboratory: %s (%s)\n", laboratory.Name, laboratory.Email)
	fmt.Println()
	fmt.Println("Demo accounts (password in parentheses):")
	fmt.Println("  maria@farmaciacentral.do (farmacia123)")
	fmt.Println("  jose@labcaribe.do        (laboratorio123)")
	fmt.Println("  pedro@example.com        (cliente123)")
	fmt.Println()
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

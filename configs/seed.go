package configs

import (
	"log"

	"github.com/smithbhavsar/ChatpataAI/entity"
)

// SeedCustomers inserts one demo account per role so every dashboard is
// reachable on a fresh database. Existing phone numbers are left alone.
func SeedCustomers() error {
	db := DB()

	demo := []entity.Customer{
		{PhoneNumber: "9000000001", Role: entity.RoleUser, LoyaltyPoints: 120},
		{PhoneNumber: "9000000002", Role: entity.RoleWaiter},
		{PhoneNumber: "9000000003", Role: entity.RoleAdmin},
		{PhoneNumber: "9000000004", Role: entity.RoleSuperAdmin},
	}

	for _, cust := range demo {
		var count int64
		db.Model(&entity.Customer{}).Where("phone_number = ?", cust.PhoneNumber).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&cust).Error; err != nil {
			return err
		}
		log.Printf("seeded %s account %s", cust.Role, cust.PhoneNumber)
	}
	return nil
}

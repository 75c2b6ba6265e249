// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/oopsskin/oopsskin-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			FullName: "Store Administrator",
			Email:    "admin@oopsskin.com",
			Role:     models.UserRoleAdmin,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Seed catalog only on an empty products table
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	if productCount == 0 {
		sampleProducts := []models.Product{
			{
				Name: "Flawless Foundation", NameAr: "كريم أساس خالي من العيوب",
				Description: "Long-lasting foundation for flawless skin", DescriptionAr: "كريم أساس طويل الأمد للبشرة الخالية من العيوب",
				Category: "Foundation", CategoryAr: "كريم الأساس",
				Price: 48.00, Rating: 4.9, ReviewsCount: 1250,
				Colors: pq.StringArray{"#FFE4E1", "#F5DEB3", "#DEB887", "#D2691E"},
				InStock: true, StockQuantity: 100,
			},
			{
				Name: "HD Powder", NameAr: "بودرة إتش دي",
				Description: "High-definition setting powder", DescriptionAr: "بودرة تثبيت عالية الوضوح",
				Category: "Powder & Setting Spray", CategoryAr: "البودرة والمثبت",
				Price: 43.00, Rating: 4.8, ReviewsCount: 856,
				Colors: pq.StringArray{"#FFE4E1", "#F5DEB3", "#DEB887"},
				InStock: true, StockQuantity: 80,
			},
			{
				Name: "Eyeshadow Palette", NameAr: "باليت ظلال العيون",
				Description: "Professional eyeshadow palette with 12 shades", DescriptionAr: "باليت ظلال عيون احترافية بـ 12 لون",
				Category: "Eyeshadow", CategoryAr: "ظلال العيون",
				Price: 65.00, OriginalPrice: floatPtr(80.00), Rating: 5.0, ReviewsCount: 2341,
				Badge: "BESTSELLER", Discount: "SAVE 19%",
				InStock: true, StockQuantity: 200,
			},
			{
				Name: "Matte Lipstick", NameAr: "روج مطفي",
				Description: "Long-wearing matte lipstick", DescriptionAr: "روج مطفي طويل الأمد",
				Category: "Lipstick", CategoryAr: "أحمر الشفاه",
				Price: 28.00, Rating: 4.9, ReviewsCount: 2156,
				Colors: pq.StringArray{"#DC143C", "#8B008B", "#800000"},
				Badge: "BESTSELLER", InStock: true, StockQuantity: 190,
			},
			{
				Name: "Makeup Brush Set", NameAr: "طقم فرش مكياج",
				Description: "Professional makeup brush set - 12 pieces", DescriptionAr: "طقم فرش مكياج احترافي - 12 قطعة",
				Category: "Brushes", CategoryAr: "الفرش",
				Price: 89.00, OriginalPrice: floatPtr(120.00), Rating: 5.0, ReviewsCount: 3421,
				Badge: "EXCLUSIVE", Discount: "SAVE 26%",
				InStock: true, StockQuantity: 60,
			},
			{
				Name: "Nourishing Lip Balm", NameAr: "مرطب شفاه مغذي",
				Description: "Hydrating lip balm with SPF protection", DescriptionAr: "مرطب شفاه مع حماية من الشمس",
				Category: "Lip Balm", CategoryAr: "مرطب الشفاه",
				Price: 15.00, Rating: 4.8, ReviewsCount: 1876,
				InStock: true, StockQuantity: 300,
			},
		}

		if err := db.Create(&sampleProducts).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Printf("Seeded %d sample products", len(sampleProducts))
	}

	// Seed vouchers only on an empty vouchers table
	var voucherCount int64
	db.Model(&models.Voucher{}).Count(&voucherCount)

	if voucherCount == 0 {
		sampleVouchers := []models.Voucher{
			{
				Code: "WELCOME10", Description: "10% off for new customers", DescriptionAr: "خصم 10% للعملاء الجدد",
				DiscountType: models.DiscountTypePercentage, DiscountValue: 10.00,
				Status: models.VoucherStatusActive,
			},
			{
				Code: "SUMMER20", Description: "Summer sale - 20% off", DescriptionAr: "تخفيضات الصيف - خصم 20%",
				DiscountType: models.DiscountTypePercentage, DiscountValue: 20.00,
				MinimumPurchase: floatPtr(50.00), MaximumDiscount: floatPtr(50.00), UsageLimit: intPtr(100),
				Status: models.VoucherStatusActive,
			},
			{
				Code: "SAVE5", Description: "$5 off your order", DescriptionAr: "خصم 5 دولار على طلبك",
				DiscountType: models.DiscountTypeFixed, DiscountValue: 5.00,
				MinimumPurchase: floatPtr(25.00),
				Status:          models.VoucherStatusActive,
			},
			{
				Code: "MAKEUP15", Description: "15% off on makeup products", DescriptionAr: "خصم 15% على منتجات المكياج",
				DiscountType: models.DiscountTypePercentage, DiscountValue: 15.00,
				MinimumPurchase: floatPtr(30.00), MaximumDiscount: floatPtr(30.00), UsageLimit: intPtr(50),
				Status: models.VoucherStatusActive,
			},
			{
				Code: "FREESHIP", Description: "Free shipping on orders over $50", DescriptionAr: "شحن مجاني للطلبات أكثر من 50 دولار",
				DiscountType: models.DiscountTypeFixed, DiscountValue: 0.00,
				MinimumPurchase: floatPtr(50.00),
				Status:          models.VoucherStatusActive,
			},
		}

		if err := db.Create(&sampleVouchers).Error; err != nil {
			return fmt.Errorf("failed to seed vouchers: %w", err)
		}
		log.Printf("Seeded %d sample vouchers", len(sampleVouchers))
	}

	log.Println("Initial data seeding completed")
	return nil
}

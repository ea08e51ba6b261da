package config

import (
	"log"

	"gjb-leaguehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedMasterData seeds initial master data
func SeedMasterData(db *gorm.DB) error {
	// Seed Award Types
	if err := seedAwardTypes(db); err != nil {
		return err
	}

	// Seed Founding Roster
	if err := seedFoundingMembers(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedAwardTypes(db *gorm.DB) error {
	awardTypes := []models.AwardType{
		{
			Code:        "LONGEST",
			Name:        "롱기스트",
			Description: "가장 멀리 친 드라이브",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Code:        "NEAREST",
			Name:        "니어핀",
			Description: "핀에 가장 가까운 티샷",
			SortOrder:   2,
			IsActive:    true,
		},
		{
			Code:        "EAGLE",
			Name:        "이글",
			Description: "이글 달성",
			SortOrder:   3,
			IsActive:    true,
		},
		{
			Code:        "LUCKY",
			Name:        "행운상",
			Description: "추첨 행운상",
			SortOrder:   4,
			IsActive:    true,
		},
		{
			Code:        "CART_FIRST",
			Name:        "카트배 1등",
			Description: "카트 팀전 평균 타수 1위",
			SortOrder:   5,
			IsActive:    true,
		},
		{
			Code:        "CART_SECOND",
			Name:        "카트배 2등",
			Description: "카트 팀전 평균 타수 2위",
			SortOrder:   6,
			IsActive:    true,
		},
		{
			Code:        "ETC",
			Name:        "기타",
			Description: "기타 시상",
			SortOrder:   7,
			IsActive:    true,
		},
	}

	for _, at := range awardTypes {
		var count int64
		db.Model(&models.AwardType{}).Where("code = ?", at.Code).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&at).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Award types seeded")
	return nil
}

func intPtr(v int) *int { return &v }

// seedFoundingMembers seeds the founding roster with their season targets
func seedFoundingMembers(db *gorm.DB) error {
	var count int64
	db.Model(&models.Member{}).Count(&count)
	if count > 0 {
		return nil // Roster already present
	}

	members := []models.Member{
		{Name: "이희진", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "최영근", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "홍석환", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "조동훈", TargetScore: 80, NextTarget: intPtr(75), IsActive: true},
		{Name: "최성현", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "박시환", TargetScore: 90, NextTarget: intPtr(95), IsActive: true},
		{Name: "박인혁", TargetScore: 90, NextTarget: intPtr(85), IsActive: true},
		{Name: "문민구", TargetScore: 75, IsActive: true},
		{Name: "김산", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "이민규", TargetScore: 80, NextTarget: intPtr(75), IsActive: true},
		{Name: "강석훈", TargetScore: 85, NextTarget: intPtr(80), IsActive: true},
		{Name: "송영섭", TargetScore: 95, NextTarget: intPtr(90), IsActive: true},
		{Name: "장주홍", TargetScore: 95, NextTarget: intPtr(90), IsActive: true},
		{Name: "정승윤", TargetScore: 95, NextTarget: intPtr(90), IsActive: true},
	}

	if err := db.Create(&members).Error; err != nil {
		return err
	}

	log.Printf("✅ Founding roster seeded (%d members)", len(members))
	return nil
}
